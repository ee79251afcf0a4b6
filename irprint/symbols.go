package irprint

import "github.com/irtext/irtext/ir"

// symNameAttr is the attribute under which symbol-defining operations
// carry their name.
const symNameAttr = "sym_name"

// SymbolTable collects every operation carrying a string sym_name
// attribute into a mapping from symbol name to defining operation,
// walking the module depth-first through all nested regions and blocks,
// terminators included.
//
// The generic print path does not consult this table; it exists as the
// hook for symbol-aware rendering variants and for tooling that needs to
// resolve @name references.
func SymbolTable(m *ir.Module) map[string]*ir.Operation {
	table := make(map[string]*ir.Operation)
	for _, op := range m.Ops {
		collectSymbols(table, op)
	}
	return table
}

func collectSymbols(table map[string]*ir.Operation, op *ir.Operation) {
	if name, ok := op.Attrs[symNameAttr].(ir.StringAttr); ok {
		table[string(name)] = op
	}
	for _, r := range op.Regions {
		collectBlockSymbols(table, r.Entry)
		for _, lb := range r.Blocks {
			collectBlockSymbols(table, lb.Block)
		}
	}
}

func collectBlockSymbols(table map[string]*ir.Operation, b *ir.Block) {
	if b == nil {
		return
	}
	for _, op := range b.Body {
		collectSymbols(table, op)
	}
	if b.Term != nil {
		collectSymbols(table, b.Term)
	}
}
