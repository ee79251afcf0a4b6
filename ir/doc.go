// Package ir provides the in-memory model for an MLIR-style intermediate
// representation.
//
// This package contains the type and attribute catalogs, the structural
// types (Operation, Block, Region, Module), source locations, and the
// operation builder. It imports nothing else from this repository; the
// printer and every other package build on top of it.
//
// Key design constraints:
//   - Type and Attr are sealed variant sets - the catalogs are closed
//   - Model values are immutable once built and safe to share
//   - No validation on construction; Validate is a separate opt-in pass
//   - Identifier generation is threaded through the builder as a linear
//     environment, never a global counter
package ir
