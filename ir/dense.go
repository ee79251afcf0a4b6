package ir

import "strings"

// DenseElt is a sealed interface for the payload of a dense literal:
// either a scalar float or a nested aggregate. The payload's nesting is
// not cross-checked against the literal's declared shape here; Validate
// reports disagreements.
type DenseElt interface {
	denseElt() // Marker method - seals interface to this package

	// Render returns the payload's textual form.
	Render() string
}

// DenseFloat is a scalar payload element.
type DenseFloat float64

func (DenseFloat) denseElt() {}

// Render returns the fixed 6-decimal value.
func (e DenseFloat) Render() string {
	return formatFloat(float64(e))
}

// DenseList is an aggregate payload element.
type DenseList []DenseElt

func (DenseList) denseElt() {}

// Render returns the bracketed, comma-joined element renderings.
func (e DenseList) Render() string {
	parts := make([]string, len(e))
	for i, elt := range e {
		parts[i] = elt.Render()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Floats builds a DenseList of scalars.
func Floats(vals ...float64) DenseList {
	list := make(DenseList, len(vals))
	for i, v := range vals {
		list[i] = DenseFloat(v)
	}
	return list
}

// Elems builds a DenseList of nested payloads.
func Elems(elts ...DenseElt) DenseList {
	return DenseList(elts)
}
