package ir

// Result is a named result declaration on an operation.
type Result struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// BlockArg is a named, typed block argument.
type BlockArg struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Operation is the central IR entity: a dialect-qualified name plus its
// operands, results, attributes, nested regions, and control-flow
// successors. Operations are built once (directly or via the builder) and
// immutable thereafter; each is owned by the block or module containing it.
type Operation struct {
	// Name is the dialect-qualified operation name, e.g. "arith.constant".
	Name string `json:"name"`

	// ID is the unique identifier used as the SSA result handle.
	ID string `json:"id"`

	// Operands name the results of other operations, in order.
	Operands []string `json:"operands,omitempty"`

	// Results declares the operation's results, in order.
	Results []Result `json:"results,omitempty"`

	// Attrs maps attribute names to values. Keys are unique; insertion
	// order is irrelevant - rendering sorts keys for determinism.
	Attrs map[string]Attr `json:"attrs,omitempty"`

	// Regions are the nested regions, in order.
	Regions []Region `json:"regions,omitempty"`

	// Terminator marks the operation as a block terminator.
	Terminator bool `json:"terminator,omitempty"`

	// Loc is the operation's source location.
	Loc Location `json:"loc,omitzero"`

	// Successors are the labels of successor blocks, for control-flow
	// terminators.
	Successors []string `json:"successors,omitempty"`
}

// Block is an ordered body of non-terminator operations plus exactly one
// terminator, stored separately. The terminator is always the last thing
// rendered for the block.
type Block struct {
	Args []BlockArg   `json:"args,omitempty"`
	Body []*Operation `json:"body,omitempty"`
	Term *Operation   `json:"term"`
}

// LabeledBlock pairs a block with its label. Regions keep labeled blocks
// as an ordered list so declaration order survives.
type LabeledBlock struct {
	Label string `json:"label"`
	Block *Block `json:"block"`
}

// Region is exactly one entry block (implicitly labeled bb0) plus any
// additional labeled blocks in declaration order. A region is owned
// exclusively by the operation containing it.
type Region struct {
	Entry  *Block         `json:"entry"`
	Blocks []LabeledBlock `json:"blocks,omitempty"`
}

// SingleBlockRegion builds a region holding only an entry block.
func SingleBlockRegion(entry *Block) Region {
	return Region{Entry: entry}
}

// Module is the root of ownership for an entire IR program: an ordered
// list of top-level operations plus a source location.
type Module struct {
	Ops []*Operation `json:"ops,omitempty"`
	Loc Location     `json:"loc,omitzero"`
}

// NewModule builds a module over the given top-level operations.
func NewModule(ops ...*Operation) *Module {
	return &Module{Ops: ops}
}
