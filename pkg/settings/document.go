// Package settings models the editor settings file as an ordered JSON
// document. Only the exclusions list is interpreted; every other key is
// carried as raw JSON so unknown settings round-trip with their content
// unchanged. Input may be JSONC (comments, trailing commas) as written
// by the editor itself.
package settings

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/gentlegoose/pkg/errors"
	"github.com/tidwall/jsonc"
)

// Document is an ordered mapping of top-level settings keys to raw JSON
// values. Key order follows first appearance in the source file.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewDocument creates an empty settings document
func NewDocument() *Document {
	return &Document{values: make(map[string]json.RawMessage)}
}

// ParseDocument parses settings file content into a Document.
// JSONC comments and trailing commas are tolerated. An empty or
// whitespace-only file parses as an empty document, matching how the
// editor treats it.
func ParseDocument(data []byte) (*Document, error) {
	doc := NewDocument()

	cleaned := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(cleaned) == 0 {
		return doc, nil
	}

	dec := json.NewDecoder(bytes.NewReader(cleaned))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrJSONParse,
			"settings file is not valid JSON")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New(errors.ErrJSONParse,
			"settings file is not a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrJSONParse,
				"settings file is not valid JSON")
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New(errors.ErrJSONParse,
				"settings file has a non-string key")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrapf(err, errors.ErrJSONParse,
				"settings value for %q is not valid JSON", key)
		}

		doc.Set(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, errors.ErrJSONParse,
			"settings file is not valid JSON")
	}

	return doc, nil
}

// Len returns the number of top-level keys
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the top-level keys in document order
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Get returns the raw value for key and whether it is present
func (d *Document) Get(key string) (json.RawMessage, bool) {
	raw, ok := d.values[key]
	return raw, ok
}

// Set stores a raw value under key, appending the key at the end when
// it is new and keeping its position when it already exists
func (d *Document) Set(key string, value json.RawMessage) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// MarshalIndent serializes the document as 2-space indented JSON with a
// trailing newline, preserving key order and the raw content of every
// value.
func (d *Document) MarshalIndent() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"failed to marshal settings key %q", key)
		}
		compact.Write(keyJSON)
		compact.WriteByte(':')
		compact.Write(d.values[key])
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal,
			"failed to format settings document")
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
