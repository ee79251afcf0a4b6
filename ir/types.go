package ir

import (
	"strconv"
	"strings"
)

// Type is a sealed interface representing the closed catalog of value types.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in consumers.
//
// Type variants:
//   - IntType: fixed-width integers (i1, i8, i16, i32, i64)
//   - FloatType: f32 and f64
//   - IndexType: the platform-width index type
//   - MemRefType: memory reference with dimensions and element type
//   - StructType: ordered structural aggregate
//   - OpaqueType: named dialect type handle
//   - FunctionType: ordered inputs and results
//   - TensorType: ranked tensor with dimensions and element type
//   - UnrankedTensorType: tensor of unknown rank
//
// Every variant carries its own textual form via Render, so adding a
// variant never requires touching the printer's dispatch.
type Type interface {
	irType() // Marker method - seals interface to this package

	// Render returns the canonical textual form of the type.
	Render() string
}

// Dim is a single dimension of a shaped type: either a static
// non-negative extent or a dynamic marker.
type Dim struct {
	Size    int64 `json:"size"`
	Dynamic bool  `json:"dynamic,omitempty"`
}

// StaticDim creates a dimension with a known extent.
func StaticDim(size int64) Dim {
	return Dim{Size: size}
}

// DynamicDim creates a dimension whose extent is unknown until runtime.
func DynamicDim() Dim {
	return Dim{Dynamic: true}
}

// Render returns the dimension's textual form: the decimal extent for a
// static dimension, "*" for a dynamic one.
func (d Dim) Render() string {
	if d.Dynamic {
		return "*"
	}
	return strconv.FormatInt(d.Size, 10)
}

// IntType is a fixed-width integer type (i1, i8, i16, i32, i64).
type IntType struct {
	Width int `json:"width"`
}

func (IntType) irType() {}

// Render returns "iN".
func (t IntType) Render() string {
	return "i" + strconv.Itoa(t.Width)
}

// FloatType is a floating-point type (f32 or f64).
type FloatType struct {
	Width int `json:"width"`
}

func (FloatType) irType() {}

// Render returns "fN".
func (t FloatType) Render() string {
	return "f" + strconv.Itoa(t.Width)
}

// IndexType is the platform-width integer used for subscripts and extents.
type IndexType struct{}

func (IndexType) irType() {}

// Render returns "index".
func (IndexType) Render() string {
	return "index"
}

// MemRefType is a reference to a shaped memory region.
type MemRefType struct {
	Dims []Dim `json:"dims"`
	Elem Type  `json:"elem"`
}

func (MemRefType) irType() {}

// Render returns "memref<D1xD2x...xElem>".
func (t MemRefType) Render() string {
	return "memref<" + renderShape(t.Dims, t.Elem) + ">"
}

// StructType is an ordered structural aggregate. Identity is structural;
// there is no nominal struct identity in the catalog.
type StructType struct {
	Fields []Type `json:"fields"`
}

func (StructType) irType() {}

// Render returns "struct<T1, T2, ...>".
func (t StructType) Render() string {
	return "struct<" + renderTypeList(t.Fields) + ">"
}

// OpaqueType is a named dialect type carried by its string handle alone.
type OpaqueType struct {
	Name string `json:"name"`
}

func (OpaqueType) irType() {}

// Render returns "!Name".
func (t OpaqueType) Render() string {
	return "!" + t.Name
}

// FunctionType is an ordered list of input types and result types.
type FunctionType struct {
	Ins  []Type `json:"ins"`
	Outs []Type `json:"outs"`
}

func (FunctionType) irType() {}

// Render returns "(ins) -> (outs)" with both sides parenthesized.
func (t FunctionType) Render() string {
	return "(" + renderTypeList(t.Ins) + ") -> (" + renderTypeList(t.Outs) + ")"
}

// TensorType is a ranked tensor with an ordered dimension list.
type TensorType struct {
	Dims []Dim `json:"dims"`
	Elem Type  `json:"elem"`
}

func (TensorType) irType() {}

// Render returns "tensor<D1x...xElem>".
func (t TensorType) Render() string {
	return "tensor<" + renderShape(t.Dims, t.Elem) + ">"
}

// UnrankedTensorType is a tensor whose rank is unknown.
type UnrankedTensorType struct {
	Elem Type `json:"elem"`
}

func (UnrankedTensorType) irType() {}

// Render returns "tensor<*xElem>".
func (t UnrankedTensorType) Render() string {
	return "tensor<*x" + t.Elem.Render() + ">"
}

// I1, I8, I16, I32, I64 are the integer types of the catalog.
var (
	I1  = IntType{Width: 1}
	I8  = IntType{Width: 8}
	I16 = IntType{Width: 16}
	I32 = IntType{Width: 32}
	I64 = IntType{Width: 64}
)

// F32 and F64 are the floating-point types of the catalog.
var (
	F32 = FloatType{Width: 32}
	F64 = FloatType{Width: 64}
)

// Index is the index type.
var Index = IndexType{}

// renderShape joins dimensions and the element type with "x" separators,
// e.g. "2x*x4xf64". A zero-dimension shape renders as the element alone.
func renderShape(dims []Dim, elem Type) string {
	var sb strings.Builder
	for _, d := range dims {
		sb.WriteString(d.Render())
		sb.WriteByte('x')
	}
	sb.WriteString(elem.Render())
	return sb.String()
}

// renderTypeList joins type renderings with ", ".
func renderTypeList(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.Render()
	}
	return strings.Join(parts, ", ")
}
