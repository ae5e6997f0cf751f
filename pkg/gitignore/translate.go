package gitignore

import "strings"

// RecursivePrefix is the glob marker that makes a pattern match at any
// directory depth in editor exclusion settings.
const RecursivePrefix = "**/"

// Translate converts a raw gitignore pattern into the exclusion glob
// syntax by ensuring the recursive prefix is present. Patterns that
// already carry the prefix are returned unchanged, so the function is
// idempotent. No other normalization is performed.
func Translate(pattern string) string {
	if strings.HasPrefix(pattern, RecursivePrefix) {
		return pattern
	}
	return RecursivePrefix + pattern
}

// TranslateAll translates a pattern list, preserving order of first
// appearance.
func TranslateAll(patterns []string) []string {
	if patterns == nil {
		return nil
	}
	translated := make([]string, 0, len(patterns))
	for _, p := range patterns {
		translated = append(translated, Translate(p))
	}
	return translated
}
