package ir

import (
	"strconv"

	"github.com/google/uuid"
)

// GenFunc produces a fresh SSA identifier from an environment, returning
// the successor environment. It must be pure: the same environment always
// yields the same identifier.
//
// The environment is linear - each returned environment is the unique
// valid input to the next call. The Builder owns that threading so stale
// reuse is structurally hard to write; uniqueness of the produced
// identifiers remains the generator's responsibility.
type GenFunc[E any] func(env E) (E, string)

// Builder is a construction session. It holds the current identifier
// environment and advances it exactly once per operation started.
//
// Not safe for concurrent use; a session is scoped to one goroutine
// building one module.
type Builder[E any] struct {
	gen GenFunc[E]
	env E
}

// NewBuilder starts a construction session from an initial environment.
func NewBuilder[E any](gen GenFunc[E], env E) *Builder[E] {
	return &Builder[E]{gen: gen, env: env}
}

// Env returns the current environment. Useful for handing the session's
// state to another construction site.
func (b *Builder[E]) Env() E {
	return b.env
}

// NewOp starts an operation with the given dialect-qualified name,
// drawing one fresh identifier from the session.
func (b *Builder[E]) NewOp(name string) *OpBuilder {
	env, id := b.gen(b.env)
	b.env = env
	return &OpBuilder{op: Operation{Name: name, ID: id}}
}

// OpBuilder accumulates the fields of one operation. Every setter is a
// pure last-write-wins record update: calling the same setter twice keeps
// only the second value, and setters may be called in any order.
//
// Before any setter call the operation has no operands, no results, an
// empty attribute mapping, no regions, no successors, is not a
// terminator, and has the unknown location.
type OpBuilder struct {
	op Operation
}

// NewOp starts an operation with a caller-chosen identifier, outside any
// session. Useful when identifiers come from an existing namespace.
func NewOp(name, id string) *OpBuilder {
	return &OpBuilder{op: Operation{Name: name, ID: id}}
}

// WithOperands sets the ordered operand reference list.
func (b *OpBuilder) WithOperands(operands ...string) *OpBuilder {
	b.op.Operands = operands
	return b
}

// WithResults sets the ordered result declarations.
func (b *OpBuilder) WithResults(results ...Result) *OpBuilder {
	b.op.Results = results
	return b
}

// WithAttrs sets the attribute mapping.
func (b *OpBuilder) WithAttrs(attrs map[string]Attr) *OpBuilder {
	b.op.Attrs = attrs
	return b
}

// WithRegions sets the ordered nested regions.
func (b *OpBuilder) WithRegions(regions ...Region) *OpBuilder {
	b.op.Regions = regions
	return b
}

// AsTerminator marks the operation as a block terminator.
func (b *OpBuilder) AsTerminator() *OpBuilder {
	b.op.Terminator = true
	return b
}

// WithLoc sets the source location.
func (b *OpBuilder) WithLoc(loc Location) *OpBuilder {
	b.op.Loc = loc
	return b
}

// WithSuccessors sets the ordered successor block labels.
func (b *OpBuilder) WithSuccessors(labels ...string) *OpBuilder {
	b.op.Successors = labels
	return b
}

// Build returns the completed operation. No consistency validation is
// performed; see Validate for the opt-in structural pass.
func (b *OpBuilder) Build() *Operation {
	op := b.op
	return &op
}

// SequenceIDs returns a generator producing prefix0, prefix1, ... over an
// int64 environment. The conventional prefix is "%".
func SequenceIDs(prefix string) GenFunc[int64] {
	return func(env int64) (int64, string) {
		return env + 1, prefix + strconv.FormatInt(env, 10)
	}
}

// FixedIDs returns a generator over predetermined identifiers, indexed by
// an int environment starting at 0.
//
// This enables deterministic test construction and golden output
// comparison. Panics when the identifiers are exhausted - a fail-fast
// signal that a test built more operations than it planned for.
func FixedIDs(ids ...string) GenFunc[int] {
	return func(env int) (int, string) {
		if env >= len(ids) {
			panic("ir: FixedIDs exhausted")
		}
		return env + 1, ids[env]
	}
}

// UUIDIDs returns a generator producing time-sortable UUIDv7 identifiers
// with a "%" prefix, for callers that need global uniqueness without
// coordinating a counter. The int64 environment only counts draws.
//
// Panics if UUID generation fails (should never happen in practice).
func UUIDIDs() GenFunc[int64] {
	return func(env int64) (int64, string) {
		return env + 1, "%" + uuid.Must(uuid.NewV7()).String()
	}
}
