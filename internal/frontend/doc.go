// Package frontend builds ir modules from declarative YAML documents.
//
// A module document describes operations, structured type descriptors,
// attributes, regions, and successors. Documents are validated against
// an embedded CUE schema before decoding, so shape errors surface with
// field paths instead of as half-built modules. Type descriptors are
// structured values ({int: 32}, {tensor: {dims: [2, "*"], elem: ...}}),
// not IR text - there is no IR parser in this repository.
package frontend
