package logging

import (
	"regexp"
	"strings"
)

var (
	sensitiveWords = map[string]bool{
		"secret":     true,
		"password":   true,
		"token":      true,
		"key":        true,
		"auth":       true,
		"credential": true,
	}
	wordSplitter = regexp.MustCompile(`[^a-z0-9]+`)
)

// redactPairs replaces values whose keys contain a sensitive word with a
// placeholder. Pairs are flattened [key1, value1, key2, value2, ...]; the
// input slice is not modified.
func redactPairs(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		key, ok := result[i].(string)
		if !ok {
			continue
		}
		if sensitiveKey(key) {
			result[i+1] = "[REDACTED]"
		}
	}
	return result
}

// sensitiveKey reports whether any segment of key matches a sensitive
// word. Segments are split on non-alphanumeric runs, so "api_key" and
// "auth-header" match but "keyboard" does not.
func sensitiveKey(key string) bool {
	for _, part := range wordSplitter.Split(strings.ToLower(key), -1) {
		if sensitiveWords[part] {
			return true
		}
	}
	return false
}
