// Package keycase converts flat string-keyed maps between the camelCase wire
// convention and the snake_case column convention. Conversion is applied once
// at the serialization boundary; values are never touched.
package keycase

import (
	"strings"
	"unicode"
)

// SnakeString converts a camelCase identifier to snake_case. An underscore is
// inserted before every uppercase letter and the letter is lowercased; leading
// underscores from a capitalized first character are stripped.
func SnakeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimLeft(b.String(), "_")
}

// CamelString converts a snake_case identifier to camelCase. The first segment
// is kept verbatim, including its case; every later segment is capitalized and
// concatenated. Empty segments (doubled underscores) are dropped.
func CamelString(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		r := []rune(p)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(strings.ToLower(string(r[1:])))
	}
	return b.String()
}

// MapToSnake re-keys a flat map to snake_case. There is no collision
// detection: if two keys normalize to the same name, the later one silently
// overwrites the earlier. Nested maps and lists are not recursed into.
func MapToSnake(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[SnakeString(k)] = v
	}
	return out
}

// MapToCamel re-keys a flat map to camelCase. Same overwrite and flatness
// semantics as MapToSnake.
func MapToCamel(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[CamelString(k)] = v
	}
	return out
}
