package ir

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate runs the opt-in structural pass over a module and reports
// every finding, aggregated into a single error (nil when clean).
//
// Printing never requires validation: the printer is total over
// structurally inconsistent modules and renders them best-effort. This
// pass exists for callers that want to catch dangling operand
// references, missing terminators, duplicate bindings, unknown successor
// labels, and dense shape/payload disagreements before handing the
// emitted text to external tooling.
func Validate(m *Module) error {
	var err error
	for _, op := range m.Ops {
		err = multierr.Append(err, validateOp(op))
	}
	return err
}

func validateOp(op *Operation) error {
	var err error
	for name, attr := range op.Attrs {
		if dense, ok := attr.(DenseAttr); ok {
			if dErr := validateDense(dense); dErr != nil {
				err = multierr.Append(err, fmt.Errorf("op %s: attr %q: %w", op.ID, name, dErr))
			}
		}
	}
	for i := range op.Regions {
		err = multierr.Append(err, validateRegion(op, &op.Regions[i]))
	}
	return err
}

func validateRegion(owner *Operation, r *Region) error {
	var err error

	if r.Entry == nil {
		return fmt.Errorf("op %s: region has no entry block", owner.ID)
	}

	// Labels visible to successor references: the implicit entry label
	// plus every declared block label.
	labels := map[string]bool{"bb0": true}
	for _, lb := range r.Blocks {
		labels[lb.Label] = true
	}

	err = multierr.Append(err, validateBlock(owner, "bb0", r.Entry, labels))
	for _, lb := range r.Blocks {
		err = multierr.Append(err, validateBlock(owner, lb.Label, lb.Block, labels))
	}
	return err
}

func validateBlock(owner *Operation, label string, b *Block, labels map[string]bool) error {
	var err error

	// Bindings accumulate exactly as the printer's type environment does:
	// block arguments first, then each operation's results in order.
	bound := make(map[string]bool, len(b.Args))
	for _, arg := range b.Args {
		if bound[arg.Name] {
			err = multierr.Append(err, fmt.Errorf("op %s: block ^%s: duplicate argument %s", owner.ID, label, arg.Name))
		}
		bound[arg.Name] = true
	}

	check := func(op *Operation) {
		for _, operand := range op.Operands {
			if !bound[operand] {
				err = multierr.Append(err, fmt.Errorf("op %s: block ^%s: operand %s of %q is not bound", owner.ID, label, operand, op.Name))
			}
		}
		for _, succ := range op.Successors {
			if !labels[succ] {
				err = multierr.Append(err, fmt.Errorf("op %s: block ^%s: successor ^%s of %q is not a block in this region", owner.ID, label, succ, op.Name))
			}
		}
		err = multierr.Append(err, validateOp(op))
	}

	for _, op := range b.Body {
		check(op)
		for _, res := range op.Results {
			if bound[res.Name] {
				err = multierr.Append(err, fmt.Errorf("op %s: block ^%s: duplicate binding %s", owner.ID, label, res.Name))
			}
			bound[res.Name] = true
		}
	}

	if b.Term == nil {
		err = multierr.Append(err, fmt.Errorf("op %s: block ^%s: missing terminator", owner.ID, label))
	} else {
		check(b.Term)
	}
	return err
}

// validateDense checks a dense literal's payload nesting against its
// declared shape, when the shape is a ranked shaped type. Dynamic
// dimensions match any payload length.
func validateDense(a DenseAttr) error {
	var dims []Dim
	switch shape := a.Shape.(type) {
	case TensorType:
		dims = shape.Dims
	case MemRefType:
		dims = shape.Dims
	default:
		return nil // unranked or scalar shapes carry no checkable extents
	}
	return matchDims(dims, a.Values)
}

func matchDims(dims []Dim, elt DenseElt) error {
	if len(dims) == 0 {
		if _, ok := elt.(DenseFloat); !ok {
			return fmt.Errorf("payload nests deeper than the declared shape")
		}
		return nil
	}
	list, ok := elt.(DenseList)
	if !ok {
		return fmt.Errorf("payload is a scalar where the shape expects rank %d", len(dims))
	}
	d := dims[0]
	if !d.Dynamic && int64(len(list)) != d.Size {
		return fmt.Errorf("payload has %d elements where the shape declares %d", len(list), d.Size)
	}
	for _, sub := range list {
		if err := matchDims(dims[1:], sub); err != nil {
			return err
		}
	}
	return nil
}
