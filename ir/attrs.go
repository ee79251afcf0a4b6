package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Attr is a sealed interface representing the closed catalog of attribute
// kinds - the constant metadata an operation can carry.
//
// This is a sealed interface - only types in this package implement it.
//
// Attr variants:
//   - StringAttr: double-quoted string
//   - BoolAttr: true/false
//   - IntAttr: decimal integer, optionally typed
//   - FloatAttr: fixed 6-decimal float, optionally typed
//   - TypeAttr: a type used as a value
//   - ArrayAttr: ordered attribute list, optionally element-typed
//   - DenseAttr: dense floating-point literal with declared shape
//   - SymbolRefAttr: @name reference
//   - VisibilityAttr: symbol visibility marker
//   - UnitAttr: presence-only marker
//
// As with Type, each variant renders itself, keeping the printer's
// dispatch closed for modification and open for extension.
type Attr interface {
	irAttr() // Marker method - seals interface to this package

	// Render returns the canonical textual form of the attribute value.
	Render() string
}

// StringAttr is a string constant.
type StringAttr string

func (StringAttr) irAttr() {}

// Render returns the double-quoted, escaped string.
func (a StringAttr) Render() string {
	return quote(string(a))
}

// BoolAttr is a boolean constant.
type BoolAttr bool

func (BoolAttr) irAttr() {}

// Render returns "true" or "false".
func (a BoolAttr) Render() string {
	if a {
		return "true"
	}
	return "false"
}

// IntAttr is an integer constant with an optional type annotation.
// A nil Type renders as the bare decimal value.
type IntAttr struct {
	Type  Type  `json:"type,omitempty"`
	Value int64 `json:"value"`
}

func (IntAttr) irAttr() {}

// Render returns the decimal value, with a " : type" suffix when typed.
func (a IntAttr) Render() string {
	s := strconv.FormatInt(a.Value, 10)
	if a.Type != nil {
		s += " : " + a.Type.Render()
	}
	return s
}

// FloatAttr is a floating-point constant with an optional type annotation.
type FloatAttr struct {
	Type  Type    `json:"type,omitempty"`
	Value float64 `json:"value"`
}

func (FloatAttr) irAttr() {}

// Render returns the fixed 6-decimal value, with a " : type" suffix when
// typed.
func (a FloatAttr) Render() string {
	s := formatFloat(a.Value)
	if a.Type != nil {
		s += " : " + a.Type.Render()
	}
	return s
}

// TypeAttr wraps a type as an attribute value.
type TypeAttr struct {
	Type Type `json:"type"`
}

func (TypeAttr) irAttr() {}

// Render returns the wrapped type's textual form.
func (a TypeAttr) Render() string {
	return a.Type.Render()
}

// ArrayAttr is an ordered list of attributes. Elem, when non-nil, records
// the element type; it is carried on the model but not rendered.
type ArrayAttr struct {
	Elem  Type   `json:"elem,omitempty"`
	Items []Attr `json:"items"`
}

func (ArrayAttr) irAttr() {}

// Render returns the bracketed, comma-joined element renderings.
func (a ArrayAttr) Render() string {
	parts := make([]string, len(a.Items))
	for i, item := range a.Items {
		parts[i] = item.Render()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DenseAttr is a dense floating-point literal. The declared Shape and the
// nesting of Values are not cross-validated by the model; the printer
// renders whatever is given. Validate reports disagreements.
type DenseAttr struct {
	Shape  Type     `json:"shape"`
	Values DenseElt `json:"values"`
}

func (DenseAttr) irAttr() {}

// Render returns "dense<PAYLOAD> : TYPE".
func (a DenseAttr) Render() string {
	return "dense<" + a.Values.Render() + "> : " + a.Shape.Render()
}

// SymbolRefAttr is a reference to a symbol by name.
type SymbolRefAttr string

func (SymbolRefAttr) irAttr() {}

// Render returns "@name".
func (a SymbolRefAttr) Render() string {
	return "@" + norm.NFC.String(string(a))
}

// Visibility is a symbol visibility marker.
type Visibility string

// Allowed visibility values.
const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityNested  Visibility = "nested"
)

// ValidVisibilities defines the allowed visibility markers.
var ValidVisibilities = map[Visibility]bool{
	VisibilityPublic:  true,
	VisibilityPrivate: true,
	VisibilityNested:  true,
}

// VisibilityAttr carries a symbol visibility marker.
type VisibilityAttr Visibility

func (VisibilityAttr) irAttr() {}

// Render returns the visibility as a quoted string literal.
func (a VisibilityAttr) Render() string {
	return `"` + string(a) + `"`
}

// UnitAttr is a presence-only marker.
type UnitAttr struct{}

func (UnitAttr) irAttr() {}

// Render returns "unit".
func (UnitAttr) Render() string {
	return "unit"
}

// formatFloat renders a float with exactly six decimal places. Negative
// values take the minus sign U+2212, not the ASCII hyphen-minus.
func formatFloat(f float64) string {
	if math.Signbit(f) {
		return "−" + strconv.FormatFloat(math.Abs(f), 'f', 6, 64)
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// quote returns the double-quoted textual form of s.
//
// Strings are NFC normalized at the rendering boundary so that two byte
// sequences encoding the same text always emit identical output. Only the
// backslash, the double quote, and control characters are escaped.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range norm.NFC.String(s) {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString(fmt.Sprintf(`\%02X`, r))
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
