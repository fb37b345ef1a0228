package settings

import "errors"

var (
	// ErrEmptyPath indicates a setting with no key path.
	ErrEmptyPath = errors.New("settings: empty key path")

	// ErrInvalidPath indicates a malformed key path (leading, trailing, or
	// doubled backslash).
	ErrInvalidPath = errors.New("settings: invalid key path")

	// ErrNoValues indicates a setting with no values to write.
	ErrNoValues = errors.New("settings: no values")
)
