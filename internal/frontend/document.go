package frontend

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/irtext/irtext/ir"
)

// Document is the root of a module document.
type Document struct {
	Module ModuleDoc `yaml:"module"`
}

// ModuleDoc describes a module: its top-level operations and location.
type ModuleDoc struct {
	Ops []OpDoc `yaml:"ops"`
	Loc *LocDoc `yaml:"loc,omitempty"`
}

// OpDoc describes one operation. ID is optional; the builder assigns a
// sequence identifier when it is omitted.
type OpDoc struct {
	Name       string             `yaml:"name"`
	ID         string             `yaml:"id,omitempty"`
	Operands   []string           `yaml:"operands,omitempty"`
	Results    []NamedTypeDoc     `yaml:"results,omitempty"`
	Attrs      map[string]AttrDoc `yaml:"attrs,omitempty"`
	Regions    []RegionDoc        `yaml:"regions,omitempty"`
	Successors []string           `yaml:"successors,omitempty"`
	Loc        *LocDoc            `yaml:"loc,omitempty"`
}

// NamedTypeDoc is a (name, type) pair, used for results and block args.
type NamedTypeDoc struct {
	Name string  `yaml:"name"`
	Type TypeDoc `yaml:"type"`
}

// BlockDoc describes a block: arguments, body, and terminator.
type BlockDoc struct {
	Args []NamedTypeDoc `yaml:"args,omitempty"`
	Body []OpDoc        `yaml:"body,omitempty"`
	Term *OpDoc         `yaml:"term,omitempty"`
}

// RegionDoc describes a region: the entry block plus labeled blocks in
// declaration order.
type RegionDoc struct {
	Entry  BlockDoc `yaml:"entry"`
	Blocks []struct {
		Label string   `yaml:"label"`
		Block BlockDoc `yaml:"block"`
	} `yaml:"blocks,omitempty"`
}

// LocDoc describes a source location.
type LocDoc struct {
	File  string `yaml:"file,omitempty"`
	Start PosDoc `yaml:"start"`
	End   PosDoc `yaml:"end"`
}

// PosDoc is a (row, col) position.
type PosDoc struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// TypeDoc is a structured type descriptor. Exactly one field should be
// set; the schema and decoder both enforce this.
type TypeDoc struct {
	Int            *int       `yaml:"int,omitempty"`
	Float          *int       `yaml:"float,omitempty"`
	Index          bool       `yaml:"index,omitempty"`
	Opaque         string     `yaml:"opaque,omitempty"`
	MemRef         *ShapedDoc `yaml:"memref,omitempty"`
	Tensor         *ShapedDoc `yaml:"tensor,omitempty"`
	UnrankedTensor *TypeDoc   `yaml:"unranked_tensor,omitempty"`
	Struct         []TypeDoc  `yaml:"struct,omitempty"`
	Function       *FuncDoc   `yaml:"function,omitempty"`
}

// ShapedDoc is the dims+elem payload of memref and tensor descriptors.
type ShapedDoc struct {
	Dims []DimDoc `yaml:"dims"`
	Elem TypeDoc  `yaml:"elem"`
}

// FuncDoc is the payload of a function type descriptor.
type FuncDoc struct {
	Ins  []TypeDoc `yaml:"ins"`
	Outs []TypeDoc `yaml:"outs"`
}

// DimDoc is a dimension: a non-negative integer or the string "*".
type DimDoc struct {
	Dim ir.Dim
}

// UnmarshalYAML decodes either an integer extent or the dynamic marker.
func (d *DimDoc) UnmarshalYAML(node *yaml.Node) error {
	var size int64
	if err := node.Decode(&size); err == nil {
		if size < 0 {
			return fmt.Errorf("line %d: dimension must be non-negative, got %d", node.Line, size)
		}
		d.Dim = ir.StaticDim(size)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil || s != "*" {
		return fmt.Errorf("line %d: dimension must be a non-negative integer or \"*\"", node.Line)
	}
	d.Dim = ir.DynamicDim()
	return nil
}

// AttrDoc is a structured attribute descriptor. Exactly one variant
// field should be set; Of optionally types int, float, and array
// variants.
type AttrDoc struct {
	String     *string   `yaml:"string,omitempty"`
	Bool       *bool     `yaml:"bool,omitempty"`
	Int        *int64    `yaml:"int,omitempty"`
	Float      *float64  `yaml:"float,omitempty"`
	Type       *TypeDoc  `yaml:"type,omitempty"`
	Of         *TypeDoc  `yaml:"of,omitempty"`
	Array      []AttrDoc `yaml:"array,omitempty"`
	Dense      *DenseDoc `yaml:"dense,omitempty"`
	Symbol     *string   `yaml:"symbol,omitempty"`
	Visibility *string   `yaml:"visibility,omitempty"`
	Unit       bool      `yaml:"unit,omitempty"`
}

// DenseDoc is the shape+values payload of a dense literal descriptor.
type DenseDoc struct {
	Shape  TypeDoc     `yaml:"shape"`
	Values DenseEltDoc `yaml:"values"`
}

// DenseEltDoc is a dense payload node: a scalar number or a nested list.
type DenseEltDoc struct {
	Elt ir.DenseElt
}

// UnmarshalYAML decodes the scalar/aggregate payload recursively.
func (d *DenseEltDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: dense payload scalar must be a number", node.Line)
		}
		d.Elt = ir.DenseFloat(f)
		return nil
	case yaml.SequenceNode:
		var elts []DenseEltDoc
		if err := node.Decode(&elts); err != nil {
			return err
		}
		list := make(ir.DenseList, len(elts))
		for i, e := range elts {
			list[i] = e.Elt
		}
		d.Elt = list
		return nil
	default:
		return fmt.Errorf("line %d: dense payload must be a number or a list", node.Line)
	}
}
