package frontend

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var moduleSchema string

// SchemaError is a document validation finding with the CUE path of the
// offending field.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidateDocument checks raw YAML bytes against the embedded module
// schema. Returns the findings as a slice so callers can report all of
// them, not just the first.
func ValidateDocument(data []byte) []error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []error{fmt.Errorf("parsing YAML: %w", err)}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(moduleSchema)
	if err := schema.Err(); err != nil {
		// The schema is embedded at build time; failing to compile it is
		// a programming error, not a document error.
		panic(fmt.Sprintf("frontend: embedded schema does not compile: %v", err))
	}

	unified := schema.Unify(ctx.Encode(doc))
	err := unified.Validate(cue.Concrete(false))
	if err == nil {
		return nil
	}

	var errs []error
	for _, e := range cueerrors.Errors(err) {
		errs = append(errs, &SchemaError{
			Path:    strings.Join(e.Path(), "."),
			Message: e.Error(),
		})
	}
	return errs
}
