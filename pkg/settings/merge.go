package settings

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/gentlegoose/pkg/errors"
)

// DefaultExclusionsKey is the Zed setting holding the file tree
// exclusion globs.
const DefaultExclusionsKey = "file_scan_exclusions"

// MergeResult describes what a merge changed
type MergeResult struct {
	// Doc is the merged document
	Doc *Document

	// Added holds the patterns appended by this merge, in encounter order
	Added []string

	// Existing holds the string entries that were already present, in
	// document order
	Existing []string

	// ExistingCount is the number of exclusion entries present before
	// the merge, including non-string entries
	ExistingCount int
}

// Merge appends each pattern not already present in the document's
// exclusion list, comparing by exact string. Existing entries keep their
// raw representation and order; new patterns are appended at the end.
// A nil document is treated as absent and yields a document containing
// only the exclusions key.
//
// Merging the same pattern set twice yields the same document as merging
// it once.
func Merge(doc *Document, key string, patterns []string) (*MergeResult, error) {
	if doc == nil {
		doc = NewDocument()
	}

	var existing []json.RawMessage
	raw, present := doc.Get(key)
	if present {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, errors.Newf(errors.ErrMalformedSettings,
				"settings key %q exists but is not a list", key)
		}
		if err := json.Unmarshal(trimmed, &existing); err != nil {
			return nil, errors.Wrapf(err, errors.ErrMalformedSettings,
				"settings key %q exists but is not a list", key)
		}
	}

	// Exact-string comparison against existing string entries;
	// non-string entries can never collide with a pattern.
	seen := make(map[string]struct{}, len(existing))
	var existingStrings []string
	for _, entry := range existing {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			seen[s] = struct{}{}
			existingStrings = append(existingStrings, s)
		}
	}

	var added []string
	merged := existing
	for _, pattern := range patterns {
		if _, dup := seen[pattern]; dup {
			continue
		}
		seen[pattern] = struct{}{}

		entry, err := json.Marshal(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"failed to marshal pattern %q", pattern)
		}
		merged = append(merged, entry)
		added = append(added, pattern)
	}

	// Leave the stored value untouched when nothing changed so existing
	// entries stay byte-identical.
	if len(added) > 0 || !present {
		doc.Set(key, marshalArray(merged))
	}

	return &MergeResult{
		Doc:           doc,
		Added:         added,
		Existing:      existingStrings,
		ExistingCount: len(existing),
	}, nil
}

// marshalArray joins raw entries into a compact JSON array
func marshalArray(entries []json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, entry := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(bytes.TrimSpace(entry))
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
