package frontend

import (
	"fmt"

	"github.com/irtext/irtext/ir"
)

// DecodeError is a document decoding error with the path of the
// offending field.
type DecodeError struct {
	Field   string
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func decodeErrorf(field, format string, args ...any) *DecodeError {
	return &DecodeError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// decodeType lowers a structured type descriptor to an ir.Type.
func decodeType(doc TypeDoc, field string) (ir.Type, error) {
	switch {
	case doc.Int != nil:
		switch *doc.Int {
		case 1, 8, 16, 32, 64:
			return ir.IntType{Width: *doc.Int}, nil
		}
		return nil, decodeErrorf(field, "integer width must be 1, 8, 16, 32, or 64, got %d", *doc.Int)
	case doc.Float != nil:
		switch *doc.Float {
		case 32, 64:
			return ir.FloatType{Width: *doc.Float}, nil
		}
		return nil, decodeErrorf(field, "float width must be 32 or 64, got %d", *doc.Float)
	case doc.Index:
		return ir.Index, nil
	case doc.Opaque != "":
		return ir.OpaqueType{Name: doc.Opaque}, nil
	case doc.MemRef != nil:
		elem, err := decodeType(doc.MemRef.Elem, field+".memref.elem")
		if err != nil {
			return nil, err
		}
		return ir.MemRefType{Dims: decodeDims(doc.MemRef.Dims), Elem: elem}, nil
	case doc.Tensor != nil:
		elem, err := decodeType(doc.Tensor.Elem, field+".tensor.elem")
		if err != nil {
			return nil, err
		}
		return ir.TensorType{Dims: decodeDims(doc.Tensor.Dims), Elem: elem}, nil
	case doc.UnrankedTensor != nil:
		elem, err := decodeType(*doc.UnrankedTensor, field+".unranked_tensor")
		if err != nil {
			return nil, err
		}
		return ir.UnrankedTensorType{Elem: elem}, nil
	case doc.Struct != nil:
		fields := make([]ir.Type, len(doc.Struct))
		for i, f := range doc.Struct {
			t, err := decodeType(f, fmt.Sprintf("%s.struct[%d]", field, i))
			if err != nil {
				return nil, err
			}
			fields[i] = t
		}
		return ir.StructType{Fields: fields}, nil
	case doc.Function != nil:
		ins, err := decodeTypeList(doc.Function.Ins, field+".function.ins")
		if err != nil {
			return nil, err
		}
		outs, err := decodeTypeList(doc.Function.Outs, field+".function.outs")
		if err != nil {
			return nil, err
		}
		return ir.FunctionType{Ins: ins, Outs: outs}, nil
	default:
		return nil, decodeErrorf(field, "type descriptor sets no variant")
	}
}

func decodeTypeList(docs []TypeDoc, field string) ([]ir.Type, error) {
	types := make([]ir.Type, len(docs))
	for i, doc := range docs {
		t, err := decodeType(doc, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

func decodeDims(docs []DimDoc) []ir.Dim {
	dims := make([]ir.Dim, len(docs))
	for i, d := range docs {
		dims[i] = d.Dim
	}
	return dims
}

// decodeAttr lowers a structured attribute descriptor to an ir.Attr.
func decodeAttr(doc AttrDoc, field string) (ir.Attr, error) {
	// Of carries the optional type annotation shared by the int, float,
	// and array variants.
	var of ir.Type
	if doc.Of != nil {
		t, err := decodeType(*doc.Of, field+".of")
		if err != nil {
			return nil, err
		}
		of = t
	}

	switch {
	case doc.String != nil:
		return ir.StringAttr(*doc.String), nil
	case doc.Bool != nil:
		return ir.BoolAttr(*doc.Bool), nil
	case doc.Int != nil:
		return ir.IntAttr{Type: of, Value: *doc.Int}, nil
	case doc.Float != nil:
		return ir.FloatAttr{Type: of, Value: *doc.Float}, nil
	case doc.Type != nil:
		t, err := decodeType(*doc.Type, field+".type")
		if err != nil {
			return nil, err
		}
		return ir.TypeAttr{Type: t}, nil
	case doc.Array != nil:
		items := make([]ir.Attr, len(doc.Array))
		for i, item := range doc.Array {
			a, err := decodeAttr(item, fmt.Sprintf("%s.array[%d]", field, i))
			if err != nil {
				return nil, err
			}
			items[i] = a
		}
		return ir.ArrayAttr{Elem: of, Items: items}, nil
	case doc.Dense != nil:
		shape, err := decodeType(doc.Dense.Shape, field+".dense.shape")
		if err != nil {
			return nil, err
		}
		return ir.DenseAttr{Shape: shape, Values: doc.Dense.Values.Elt}, nil
	case doc.Symbol != nil:
		return ir.SymbolRefAttr(*doc.Symbol), nil
	case doc.Visibility != nil:
		v := ir.Visibility(*doc.Visibility)
		if !ir.ValidVisibilities[v] {
			return nil, decodeErrorf(field, "visibility must be public, private, or nested, got %q", *doc.Visibility)
		}
		return ir.VisibilityAttr(v), nil
	case doc.Unit:
		return ir.UnitAttr{}, nil
	default:
		return nil, decodeErrorf(field, "attribute descriptor sets no variant")
	}
}

// decodeLoc lowers a location descriptor; nil means the unknown location.
func decodeLoc(doc *LocDoc) ir.Location {
	if doc == nil {
		return ir.UnknownLoc()
	}
	return ir.Location{
		File:  doc.File,
		Start: ir.Position{Row: doc.Start.Row, Col: doc.Start.Col},
		End:   ir.Position{Row: doc.End.Row, Col: doc.End.Col},
	}
}
