package winreg

import "errors"

var (
	// ErrUnsupported indicates live registry access on a non-Windows build.
	ErrUnsupported = errors.New("winreg: live registry access requires windows")

	// ErrUnknownKind indicates a value whose kind has no write mapping.
	ErrUnknownKind = errors.New("winreg: unknown value kind")

	// ErrClosed indicates a write against a closed key.
	ErrClosed = errors.New("winreg: key is closed")
)
