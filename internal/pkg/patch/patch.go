// Package patch resolves partial updates where a nil pointer means "keep".
package patch

import "strings"

func Coalesce[T any](ptr *T, current T) T {
	if ptr == nil {
		return current
	}
	return *ptr
}

// Text is Coalesce for free-text fields; surrounding whitespace is dropped
// from both the update and the current value.
func Text(ptr *string, current string) string {
	return strings.TrimSpace(Coalesce(ptr, current))
}
