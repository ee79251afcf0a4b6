package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const symbolsDoc = `
module:
  ops:
    - name: func.func
      id: "%f"
      attrs:
        sym_name: {string: main}
    - name: memref.global
      id: "%g"
      attrs:
        sym_name: {string: buffer}
    - name: test.noop
      id: "%n"
`

func TestSymbolsText(t *testing.T) {
	path := writeDoc(t, symbolsDoc)

	out, err := runCommand(t, "symbols", path)
	require.NoError(t, err)

	// Sorted by symbol name.
	assert.Regexp(t, `(?s)@buffer.*@main`, out)
	assert.Contains(t, out, `@main: "func.func" (%f)`)
}

func TestSymbolsJSON(t *testing.T) {
	path := writeDoc(t, symbolsDoc)

	out, err := runCommand(t, "--format", "json", "symbols", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestSymbolsNone(t *testing.T) {
	path := writeDoc(t, constantDoc)

	out, err := runCommand(t, "symbols", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No symbols defined")
}
