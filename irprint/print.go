package irprint

import (
	"maps"
	"slices"
	"strings"

	"github.com/irtext/irtext/ir"
)

// indentUnit is the per-level indentation applied uniformly to block
// headers, operation lines, and region closing braces.
const indentUnit = "  "

// missingAttr is the sentinel rendered for a key listed in an attribute
// dictionary but absent (nil) at render time. Printing stays total even
// over a malformed mapping.
const missingAttr = "<missing>"

// Print returns the canonical textual form of a module.
func Print(m *ir.Module) string {
	var sb strings.Builder
	sb.WriteString("module {\n")
	env := typeEnv{}
	for _, op := range m.Ops {
		printOp(&sb, op, env, 1)
		env = env.bindResults(op)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// typeEnv maps SSA identifiers to their types within one block. It is
// threaded functionally: bind operations return a fresh environment and
// never mutate the receiver, so an operation always sees exactly the
// bindings accumulated before it.
type typeEnv map[string]ir.Type

// lookup returns the rendered type bound to an identifier, or the empty
// string when the identifier is unbound in this block.
func (e typeEnv) lookup(id string) string {
	t, ok := e[id]
	if !ok {
		return ""
	}
	return t.Render()
}

// bindResults returns a new environment extended with op's result types.
func (e typeEnv) bindResults(op *ir.Operation) typeEnv {
	next := maps.Clone(e)
	if next == nil {
		next = typeEnv{}
	}
	for _, res := range op.Results {
		next[res.Name] = res.Type
	}
	return next
}

// envFromArgs seeds a block's environment from its own arguments alone.
// Bindings never cross block or region boundaries.
func envFromArgs(args []ir.BlockArg) typeEnv {
	env := make(typeEnv, len(args))
	for _, arg := range args {
		env[arg.Name] = arg.Type
	}
	return env
}

// printOp renders one operation line (plus its nested regions) in the
// generic form:
//
//	<results> = "<name>"(<operands>) <regions> <attrs> : (<operand-types>) -> <result-sig> <successors>
func printOp(sb *strings.Builder, op *ir.Operation, env typeEnv, indent int) {
	writeIndent(sb, indent)

	if len(op.Results) > 0 {
		names := make([]string, len(op.Results))
		for i, res := range op.Results {
			names[i] = res.Name
		}
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString(" = ")
	}

	sb.WriteByte('"')
	sb.WriteString(op.Name)
	sb.WriteString(`"(`)
	sb.WriteString(strings.Join(op.Operands, ", "))
	sb.WriteByte(')')

	if len(op.Regions) > 0 {
		sb.WriteString(" ({\n")
		for i := range op.Regions {
			printRegion(sb, &op.Regions[i], indent)
		}
		writeIndent(sb, indent)
		sb.WriteString("})")
	}

	if len(op.Attrs) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(renderAttrDict(op.Attrs))
	}

	sb.WriteString(" : (")
	operandTypes := make([]string, len(op.Operands))
	for i, operand := range op.Operands {
		operandTypes[i] = env.lookup(operand)
	}
	sb.WriteString(strings.Join(operandTypes, ", "))
	sb.WriteString(") -> ")
	sb.WriteString(renderResultSig(op.Results))

	if len(op.Successors) > 0 {
		labels := make([]string, len(op.Successors))
		for i, label := range op.Successors {
			labels[i] = "^" + label
		}
		sb.WriteString(" [")
		sb.WriteString(strings.Join(labels, " "))
		sb.WriteByte(']')
	}

	sb.WriteString(renderLoc(op.Loc))
	sb.WriteByte('\n')
}

// printRegion renders a region's entry block followed by its labeled
// blocks in declaration order, two levels deeper than the owning
// operation. The entry block carries the implicit label bb0 and drops its
// header line entirely when it has no arguments.
func printRegion(sb *strings.Builder, r *ir.Region, opIndent int) {
	if r.Entry != nil {
		printBlock(sb, "bb0", r.Entry, opIndent, true)
	}
	for _, lb := range r.Blocks {
		printBlock(sb, lb.Label, lb.Block, opIndent, false)
	}
}

// printBlock renders one block: its header line (unless implicit and
// argumentless), then the body in declaration order, then the
// terminator. The terminator sees the environment accumulated from the
// entire body.
func printBlock(sb *strings.Builder, label string, b *ir.Block, opIndent int, implicit bool) {
	if !implicit || len(b.Args) > 0 {
		writeIndent(sb, opIndent+1)
		sb.WriteByte('^')
		sb.WriteString(label)
		sb.WriteByte('(')
		args := make([]string, len(b.Args))
		for i, arg := range b.Args {
			args[i] = arg.Name + ": " + arg.Type.Render()
		}
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteString("):\n")
	}

	env := envFromArgs(b.Args)
	for _, op := range b.Body {
		printOp(sb, op, env, opIndent+2)
		env = env.bindResults(op)
	}
	if b.Term != nil {
		printOp(sb, b.Term, env, opIndent+2)
	}
}

// renderAttrDict renders an attribute mapping with keys in
// lexicographically sorted order. A dictionary containing a "callee" key
// is a properties dictionary in the target format and wraps in <{...}>
// instead of {...}.
func renderAttrDict(attrs map[string]ir.Attr) string {
	keys := slices.Sorted(maps.Keys(attrs))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " = " + renderAttr(attrs[k])
	}
	body := strings.Join(parts, ", ")
	if _, ok := attrs["callee"]; ok {
		return "<{" + body + "}>"
	}
	return "{" + body + "}"
}

func renderAttr(a ir.Attr) string {
	if a == nil {
		return missingAttr
	}
	return a.Render()
}

// renderResultSig renders the right-hand side of the type signature: the
// single result's type unparenthesized, or a parenthesized tuple
// otherwise (including the empty tuple for zero results).
func renderResultSig(results []ir.Result) string {
	if len(results) == 1 {
		return results[0].Type.Render()
	}
	parts := make([]string, len(results))
	for i, res := range results {
		parts[i] = res.Type.Render()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// renderLoc renders the trailing location annotation of an operation.
// The annotation is currently suppressed: locations are threaded through
// the model but deliberately emit nothing. Kept as a function so a
// location-aware printer variant has a single place to change.
func renderLoc(ir.Location) string {
	return ""
}

func writeIndent(sb *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		sb.WriteString(indentUnit)
	}
}
