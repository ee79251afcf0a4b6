package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/irtext/irtext/irprint"
)

// SymbolEntry is one row of the symbols listing.
type SymbolEntry struct {
	Symbol string `json:"symbol"`
	Op     string `json:"op"`
	ID     string `json:"id"`
}

// NewSymbolsCommand creates the symbols command.
func NewSymbolsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols <module.yaml>",
		Short: "List the symbols a module defines",
		Long: `Build an IR module from a YAML module document and list every
operation carrying a sym_name attribute, walking all nested regions.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runSymbols(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	m, err := loadModule(formatter, path)
	if err != nil {
		return err
	}

	table := irprint.SymbolTable(m)
	entries := make([]SymbolEntry, 0, len(table))
	for _, name := range slices.Sorted(maps.Keys(table)) {
		op := table[name]
		entries = append(entries, SymbolEntry{Symbol: name, Op: op.Name, ID: op.ID})
	}

	if formatter.Format == "json" {
		return formatter.Success(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "No symbols defined")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "@%s: %q (%s)\n", e.Symbol, e.Op, e.ID)
	}
	return nil
}
