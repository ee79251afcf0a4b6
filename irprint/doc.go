// Package irprint renders an ir.Module to its canonical generic textual
// form.
//
// Print is a pure function: no I/O, no shared state, byte-identical
// output for equal inputs. Determinism comes from two mechanisms -
// attribute dictionaries render in sorted key order, and the SSA type
// environment is threaded functionally through each block instead of
// living in a mutable table.
//
// Rendering is total: structurally inconsistent modules (dangling
// operands, shape/payload disagreements) still print, best-effort.
// Callers that want findings run ir.Validate separately.
package irprint
