package settings

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/gentlegoose/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_PreservesKeyOrder(t *testing.T) {
	input := []byte(`{
  "theme": "dark",
  "file_scan_exclusions": ["**/.env"],
  "tab_size": 4
}`)

	doc, err := ParseDocument(input)
	require.NoError(t, err)

	assert.Equal(t, []string{"theme", "file_scan_exclusions", "tab_size"}, doc.Keys())
}

func TestParseDocument_OpaqueValuesRoundTrip(t *testing.T) {
	input := []byte(`{
  "lsp": {
    "gopls": {
      "initialization_options": {"staticcheck": true}
    }
  },
  "tab_size": 4,
  "preferred_line_length": 100.5,
  "features": [1, "two", null, {"three": 3}]
}`)

	doc, err := ParseDocument(input)
	require.NoError(t, err)

	out, err := doc.MarshalIndent()
	require.NoError(t, err)

	// Content must survive a round-trip even if whitespace is normalized
	var want, got map[string]interface{}
	require.NoError(t, json.Unmarshal(input, &want))
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, want, got)
}

func TestParseDocument_JSONC(t *testing.T) {
	input := []byte(`{
  // hidden files
  "file_scan_exclusions": [
    "**/.git", // the usual suspect
  ],
  "theme": "dark",
}`)

	doc, err := ParseDocument(input)
	require.NoError(t, err)

	raw, ok := doc.Get("file_scan_exclusions")
	require.True(t, ok)

	var exclusions []string
	require.NoError(t, json.Unmarshal(raw, &exclusions))
	assert.Equal(t, []string{"**/.git"}, exclusions)
}

func TestParseDocument_Empty(t *testing.T) {
	for _, input := range [][]byte{nil, []byte(""), []byte("  \n\t")} {
		doc, err := ParseDocument(input)
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Len())
	}
}

func TestParseDocument_InvalidJSON(t *testing.T) {
	_, err := ParseDocument([]byte(`{"theme": }`))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrJSONParse))
}

func TestParseDocument_NotAnObject(t *testing.T) {
	_, err := ParseDocument([]byte(`["not", "an", "object"]`))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrJSONParse))
}

func TestDocument_SetKeepsPosition(t *testing.T) {
	doc := NewDocument()
	doc.Set("a", json.RawMessage(`1`))
	doc.Set("b", json.RawMessage(`2`))
	doc.Set("a", json.RawMessage(`3`))

	assert.Equal(t, []string{"a", "b"}, doc.Keys())

	raw, ok := doc.Get("a")
	require.True(t, ok)
	assert.Equal(t, json.RawMessage(`3`), raw)
}

func TestDocument_MarshalIndent(t *testing.T) {
	doc := NewDocument()
	doc.Set("file_scan_exclusions", json.RawMessage(`["**/.env","**/node_modules/"]`))

	out, err := doc.MarshalIndent()
	require.NoError(t, err)

	want := `{
  "file_scan_exclusions": [
    "**/.env",
    "**/node_modules/"
  ]
}
`
	assert.Equal(t, want, string(out))
}
