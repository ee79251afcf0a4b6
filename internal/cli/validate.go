package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/irtext/irtext/ir"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <module.yaml>",
		Short: "Run the opt-in structural pass over a module",
		Long: `Build an IR module from a YAML module document and run the
structural validation pass: dangling operand references, missing
terminators, duplicate bindings, unknown successor labels, and dense
shape/payload disagreements.

Emission never requires this pass; it exists to catch inconsistencies
before handing emitted text to external tooling.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	if err := ir.Validate(m); err != nil {
		findings := multierr.Errors(err)
		messages := make([]string, len(findings))
		for i, f := range findings {
			messages[i] = f.Error()
		}

		if formatter.Format == "json" {
			_ = formatter.Error(ErrCodeValidation, fmt.Sprintf("%d finding(s)", len(findings)), messages)
		} else {
			fmt.Fprintf(formatter.Writer, "✗ %d finding(s)\n\n", len(findings))
			for _, msg := range messages {
				fmt.Fprintf(formatter.Writer, "  %s\n", msg)
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d finding(s)", len(findings)))
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]int{"findings": 0})
	}
	fmt.Fprintf(formatter.Writer, "✓ %d top-level op(s), no findings\n", len(m.Ops))
	return nil
}
