package payload

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPath indicates a path with no segments.
	ErrEmptyPath = errors.New("empty parameter path")
	// ErrFieldNotFound indicates a path segment that the current value does not expose.
	ErrFieldNotFound = errors.New("field not found")
	// ErrNilValue indicates a nil value reached while path segments remain.
	ErrNilValue = errors.New("nil value mid-path")
	// ErrNoFields indicates a value whose kind cannot be destructured by name.
	ErrNoFields = errors.New("value has no fields")
)

// Resolve walks a dot-separated path over root and returns the value found
// at its end. Resolution is strict: a missing segment, a nil value hit
// before the path is exhausted, or a non-destructurable value all fail with
// a wrapped sentinel, never with a fallback to root. A nil result is only
// an error when segments remain after it.
func Resolve(root Value, path string) (Value, error) {
	if path == "" {
		return Nil(), fmt.Errorf("resolve: %w", ErrEmptyPath)
	}
	segments := strings.Split(path, ".")
	current := root
	for i, segment := range segments {
		if current.IsNil() {
			return Nil(), fmt.Errorf("resolve %q: segment %q (position %d): %w", path, segment, i, ErrNilValue)
		}
		if !current.HasFields() {
			return Nil(), fmt.Errorf("resolve %q: segment %q (position %d): %s value: %w", path, segment, i, current.Kind(), ErrNoFields)
		}
		next, ok := current.Field(segment)
		if !ok {
			return Nil(), fmt.Errorf("resolve %q: segment %q (position %d): %w", path, segment, i, ErrFieldNotFound)
		}
		current = next
	}
	return current, nil
}

// ValidatePath checks path syntax without resolving it: the path must be
// non-empty and contain no empty segments. Declarative configuration uses
// this to fail early; Resolve itself treats an empty segment as an ordinary
// missing field.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	for i, segment := range strings.Split(path, ".") {
		if segment == "" {
			return fmt.Errorf("path %q: empty segment (position %d)", path, i)
		}
	}
	return nil
}
