package frontend

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/irtext/irtext/ir"
)

// Load reads, validates, and builds a module document from a file.
// Schema findings are returned as the second value; the first error is
// non-nil only for I/O, parse, or build failures.
func Load(path string) (*ir.Module, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading module document %s", path)
	}
	return LoadBytes(data)
}

// LoadBytes validates and builds a module document from raw YAML bytes.
func LoadBytes(data []byte) (*ir.Module, []error, error) {
	if findings := ValidateDocument(data); len(findings) > 0 {
		return nil, findings, nil
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, errors.Wrap(err, "decoding module document")
	}

	m, err := Build(&doc)
	if err != nil {
		return nil, nil, err
	}
	return m, nil, nil
}

// Build lowers a decoded document onto the ir builder. Operations
// without an explicit id draw one from a session-scoped sequence.
func Build(doc *Document) (*ir.Module, error) {
	session := ir.NewBuilder(ir.SequenceIDs("%op"), int64(0))

	ops := make([]*ir.Operation, len(doc.Module.Ops))
	for i := range doc.Module.Ops {
		op, err := buildOp(session, &doc.Module.Ops[i], fmt.Sprintf("module.ops[%d]", i))
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return &ir.Module{Ops: ops, Loc: decodeLoc(doc.Module.Loc)}, nil
}

func buildOp(session *ir.Builder[int64], doc *OpDoc, field string) (*ir.Operation, error) {
	b, err := opBuilder(session, doc, field)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// buildTerm builds a block's terminator. The document never spells out
// the terminator flag; position in the block implies it.
func buildTerm(session *ir.Builder[int64], doc *OpDoc, field string) (*ir.Operation, error) {
	b, err := opBuilder(session, doc, field)
	if err != nil {
		return nil, err
	}
	return b.AsTerminator().Build(), nil
}

func opBuilder(session *ir.Builder[int64], doc *OpDoc, field string) (*ir.OpBuilder, error) {
	if doc.Name == "" {
		return nil, decodeErrorf(field, "operation name is required")
	}

	var b *ir.OpBuilder
	if doc.ID != "" {
		b = ir.NewOp(doc.Name, doc.ID)
	} else {
		b = session.NewOp(doc.Name)
	}

	if len(doc.Operands) > 0 {
		b.WithOperands(doc.Operands...)
	}

	if len(doc.Results) > 0 {
		results := make([]ir.Result, len(doc.Results))
		for i, r := range doc.Results {
			t, err := decodeType(r.Type, fmt.Sprintf("%s.results[%d].type", field, i))
			if err != nil {
				return nil, err
			}
			results[i] = ir.Result{Name: r.Name, Type: t}
		}
		b.WithResults(results...)
	}

	if len(doc.Attrs) > 0 {
		attrs := make(map[string]ir.Attr, len(doc.Attrs))
		for name, a := range doc.Attrs {
			attr, err := decodeAttr(a, fmt.Sprintf("%s.attrs.%s", field, name))
			if err != nil {
				return nil, err
			}
			attrs[name] = attr
		}
		b.WithAttrs(attrs)
	}

	if len(doc.Regions) > 0 {
		regions := make([]ir.Region, len(doc.Regions))
		for i := range doc.Regions {
			r, err := buildRegion(session, &doc.Regions[i], fmt.Sprintf("%s.regions[%d]", field, i))
			if err != nil {
				return nil, err
			}
			regions[i] = r
		}
		b.WithRegions(regions...)
	}

	if len(doc.Successors) > 0 {
		b.WithSuccessors(doc.Successors...)
	}

	b.WithLoc(decodeLoc(doc.Loc))
	return b, nil
}

func buildRegion(session *ir.Builder[int64], doc *RegionDoc, field string) (ir.Region, error) {
	entry, err := buildBlock(session, &doc.Entry, field+".entry")
	if err != nil {
		return ir.Region{}, err
	}

	region := ir.Region{Entry: entry}
	for i := range doc.Blocks {
		lb := &doc.Blocks[i]
		block, err := buildBlock(session, &lb.Block, fmt.Sprintf("%s.blocks[%d]", field, i))
		if err != nil {
			return ir.Region{}, err
		}
		region.Blocks = append(region.Blocks, ir.LabeledBlock{Label: lb.Label, Block: block})
	}
	return region, nil
}

func buildBlock(session *ir.Builder[int64], doc *BlockDoc, field string) (*ir.Block, error) {
	block := &ir.Block{}

	for i, a := range doc.Args {
		t, err := decodeType(a.Type, fmt.Sprintf("%s.args[%d].type", field, i))
		if err != nil {
			return nil, err
		}
		block.Args = append(block.Args, ir.BlockArg{Name: a.Name, Type: t})
	}

	for i := range doc.Body {
		op, err := buildOp(session, &doc.Body[i], fmt.Sprintf("%s.body[%d]", field, i))
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, op)
	}

	if doc.Term != nil {
		term, err := buildTerm(session, doc.Term, field+".term")
		if err != nil {
			return nil, err
		}
		block.Term = term
	}
	return block, nil
}
