package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrRendering(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		want string
	}{
		{"string", StringAttr("hello"), `"hello"`},
		{"string_escaped", StringAttr(`say "hi"\now`), `"say \"hi\"\\now"`},
		{"bool_true", BoolAttr(true), "true"},
		{"bool_false", BoolAttr(false), "false"},
		{"int_untyped", IntAttr{Value: 42}, "42"},
		{"int_negative", IntAttr{Value: -7}, "-7"},
		{"int_typed", IntAttr{Type: I32, Value: 42}, "42 : i32"},
		{"float_untyped", FloatAttr{Value: 1.5}, "1.500000"},
		{"float_negative", FloatAttr{Value: -0.25}, "−0.250000"},
		{"float_typed", FloatAttr{Type: F64, Value: 2}, "2.000000 : f64"},
		{"type", TypeAttr{Type: TensorType{Dims: []Dim{StaticDim(2)}, Elem: F32}}, "tensor<2xf32>"},
		{"array", ArrayAttr{Items: []Attr{IntAttr{Value: 1}, IntAttr{Value: 2}}}, "[1, 2]"},
		{"array_empty", ArrayAttr{}, "[]"},
		{"array_elem_type_not_rendered", ArrayAttr{Elem: I64, Items: []Attr{IntAttr{Value: 9}}}, "[9]"},
		{"symbol", SymbolRefAttr("main"), "@main"},
		{"visibility_public", VisibilityAttr(VisibilityPublic), `"public"`},
		{"visibility_private", VisibilityAttr(VisibilityPrivate), `"private"`},
		{"visibility_nested", VisibilityAttr(VisibilityNested), `"nested"`},
		{"unit", UnitAttr{}, "unit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attr.Render())
		})
	}
}

func TestDenseAttrRendering(t *testing.T) {
	attr := DenseAttr{
		Shape: TensorType{Dims: []Dim{StaticDim(2), StaticDim(2)}, Elem: F64},
		Values: Elems(
			Floats(1, 2),
			Floats(3, 4),
		),
	}
	want := "dense<[[1.000000, 2.000000], [3.000000, 4.000000]]> : tensor<2x2xf64>"
	assert.Equal(t, want, attr.Render())
}

func TestDenseScalarRendering(t *testing.T) {
	attr := DenseAttr{Shape: TensorType{Elem: F32}, Values: DenseFloat(0.5)}
	assert.Equal(t, "dense<0.500000> : tensor<f32>", attr.Render())
}

func TestNegativeFloatSignGlyph(t *testing.T) {
	// Negative floats carry the minus sign U+2212 in both attribute and
	// dense payload positions, never the ASCII hyphen-minus.
	assert.Equal(t, "−0.250000", FloatAttr{Value: -0.25}.Render())
	assert.Equal(t, "−3.000000", DenseFloat(-3).Render())
	assert.NotContains(t, FloatAttr{Value: -1.5}.Render(), "-")

	attr := DenseAttr{
		Shape:  TensorType{Dims: []Dim{StaticDim(2)}, Elem: F64},
		Values: Floats(1, -2),
	}
	assert.Equal(t, "dense<[1.000000, −2.000000]> : tensor<2xf64>", attr.Render())
}

func TestStringNFCNormalization(t *testing.T) {
	// e + combining acute normalizes to the precomposed code point, so
	// both spellings emit identical bytes.
	composed := StringAttr("caf\u00e9")
	decomposed := StringAttr("cafe\u0301")
	assert.Equal(t, composed.Render(), decomposed.Render())
}
