package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/irtext/irtext/internal/frontend"
	"github.com/irtext/irtext/ir"
	"github.com/irtext/irtext/irprint"
)

// EmitOptions holds flags for the emit command.
type EmitOptions struct {
	*RootOptions
	Output string // output file path
}

// EmitResult is the JSON payload for a successful emit.
type EmitResult struct {
	Text        string `json:"text"`
	Fingerprint string `json:"fingerprint"`
	OpCount     int    `json:"op_count"`
}

// NewEmitCommand creates the emit command.
func NewEmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EmitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "emit <module.yaml>",
		Short: "Build a module document and emit its generic textual form",
		Long: `Build an IR module from a YAML module document and emit the
canonical generic textual form, to stdout or to a file.

The document is validated against the module schema before building.
Emission itself is total: structurally inconsistent modules still emit,
best-effort. Use the validate command to gate on the structural pass.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runEmit(opts *EmitOptions, path string, cmd *cobra.Command) error {
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

	text := irprint.Print(m)
	formatter.VerboseLog("Printed %d top-level op(s), %d bytes", len(m.Ops), len(text))

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(text), 0644); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: writing %s", ErrCodeWriteFailed, opts.Output))
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(EmitResult{
			Text:        text,
			Fingerprint: irprint.Fingerprint(m),
			OpCount:     len(m.Ops),
		})
	}

	if opts.Output != "" {
		fmt.Fprintf(formatter.Writer, "Wrote %s (%d bytes)\n", opts.Output, len(text))
		return nil
	}
	fmt.Fprint(formatter.Writer, text)
	return nil
}

// loadModule runs the shared load path: read, schema-validate, build.
// Schema findings exit 1; I/O and build failures exit 2.
func loadModule(formatter *OutputFormatter, path string) (*ir.Module, error) {
	m, findings, err := frontend.Load(path)
	if err != nil {
		_ = formatter.Error(ErrCodeBuild, err.Error(), nil)
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("%s: %v", ErrCodeBuild, err))
	}
	if len(findings) > 0 {
		for _, f := range findings {
			_ = formatter.Error(ErrCodeDocument, f.Error(), nil)
		}
		return nil, NewExitError(ExitFailure, fmt.Sprintf("document failed schema validation with %d finding(s)", len(findings)))
	}
	return m, nil
}
