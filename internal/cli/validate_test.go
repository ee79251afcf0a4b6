package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const danglingDoc = `
module:
  ops:
    - name: func.func
      id: "%f"
      regions:
        - entry:
            term:
              name: func.return
              id: "%t"
              operands: ["%ghost"]
`

func TestValidateClean(t *testing.T) {
	path := writeDoc(t, constantDoc)

	out, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "no findings")
}

func TestValidateFindings(t *testing.T) {
	path := writeDoc(t, danglingDoc)

	out, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "%ghost")
}

func TestValidateDoesNotGateEmit(t *testing.T) {
	// Emission is total: the same structurally inconsistent module that
	// fails validate still emits.
	path := writeDoc(t, danglingDoc)

	out, err := runCommand(t, "emit", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"func.return"(%ghost) : () -> ()`)
}
