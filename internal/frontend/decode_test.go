package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irtext/irtext/ir"
)

func intp(v int) *int          { return &v }
func int64p(v int64) *int64    { return &v }
func floatp(v float64) *float64 { return &v }
func strp(v string) *string    { return &v }
func boolp(v bool) *bool       { return &v }

func TestDecodeType(t *testing.T) {
	tests := []struct {
		name string
		doc  TypeDoc
		want ir.Type
	}{
		{"int", TypeDoc{Int: intp(32)}, ir.I32},
		{"float", TypeDoc{Float: intp(64)}, ir.F64},
		{"index", TypeDoc{Index: true}, ir.Index},
		{"opaque", TypeDoc{Opaque: "llvm.ptr"}, ir.OpaqueType{Name: "llvm.ptr"}},
		{
			"tensor",
			TypeDoc{Tensor: &ShapedDoc{
				Dims: []DimDoc{{Dim: ir.StaticDim(2)}, {Dim: ir.DynamicDim()}},
				Elem: TypeDoc{Float: intp(32)},
			}},
			ir.TensorType{Dims: []ir.Dim{ir.StaticDim(2), ir.DynamicDim()}, Elem: ir.F32},
		},
		{
			"unranked_tensor",
			TypeDoc{UnrankedTensor: &TypeDoc{Int: intp(8)}},
			ir.UnrankedTensorType{Elem: ir.I8},
		},
		{
			"struct",
			TypeDoc{Struct: []TypeDoc{{Int: intp(1)}, {Float: intp(64)}}},
			ir.StructType{Fields: []ir.Type{ir.I1, ir.F64}},
		},
		{
			"function",
			TypeDoc{Function: &FuncDoc{Ins: []TypeDoc{{Int: intp(32)}}, Outs: []TypeDoc{{Int: intp(64)}}}},
			ir.FunctionType{Ins: []ir.Type{ir.I32}, Outs: []ir.Type{ir.I64}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeType(tt.doc, "t")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  TypeDoc
		want string
	}{
		{"bad_int_width", TypeDoc{Int: intp(7)}, "integer width"},
		{"bad_float_width", TypeDoc{Float: intp(16)}, "float width"},
		{"empty", TypeDoc{}, "no variant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeType(tt.doc, "t")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, "t", decodeErr.Field)
		})
	}
}

func TestDecodeAttr(t *testing.T) {
	tests := []struct {
		name string
		doc  AttrDoc
		want ir.Attr
	}{
		{"string", AttrDoc{String: strp("hi")}, ir.StringAttr("hi")},
		{"bool", AttrDoc{Bool: boolp(true)}, ir.BoolAttr(true)},
		{"int", AttrDoc{Int: int64p(42)}, ir.IntAttr{Value: 42}},
		{"int_typed", AttrDoc{Int: int64p(42), Of: &TypeDoc{Int: intp(32)}}, ir.IntAttr{Type: ir.I32, Value: 42}},
		{"float", AttrDoc{Float: floatp(1.5)}, ir.FloatAttr{Value: 1.5}},
		{"type", AttrDoc{Type: &TypeDoc{Index: true}}, ir.TypeAttr{Type: ir.Index}},
		{
			"array",
			AttrDoc{Array: []AttrDoc{{Int: int64p(1)}, {Int: int64p(2)}}},
			ir.ArrayAttr{Items: []ir.Attr{ir.IntAttr{Value: 1}, ir.IntAttr{Value: 2}}},
		},
		{"symbol", AttrDoc{Symbol: strp("main")}, ir.SymbolRefAttr("main")},
		{"visibility", AttrDoc{Visibility: strp("nested")}, ir.VisibilityAttr(ir.VisibilityNested)},
		{"unit", AttrDoc{Unit: true}, ir.UnitAttr{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeAttr(tt.doc, "a")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeAttrErrors(t *testing.T) {
	_, err := decodeAttr(AttrDoc{Visibility: strp("internal")}, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "visibility")

	_, err = decodeAttr(AttrDoc{}, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no variant")
}

func TestDecodeLoc(t *testing.T) {
	assert.True(t, decodeLoc(nil).IsUnknown())

	loc := decodeLoc(&LocDoc{
		File:  "main.src",
		Start: PosDoc{Row: 1, Col: 2},
		End:   PosDoc{Row: 3, Col: 4},
	})
	assert.Equal(t, "main.src", loc.File)
	assert.Equal(t, ir.Position{Row: 1, Col: 2}, loc.Start)
	assert.Equal(t, ir.Position{Row: 3, Col: 4}, loc.End)
}
