package mount

import "errors"

var (
	// ErrNotMounted indicates an unmount when no alias key exists.
	ErrNotMounted = errors.New("mount: alias not mounted")

	// ErrAliasUnavailable indicates the alias key could not be opened after
	// a successful load.
	ErrAliasUnavailable = errors.New("mount: alias not addressable after load")

	// ErrDanglingAlias indicates the alias key still exists after an unload
	// that reported success.
	ErrDanglingAlias = errors.New("mount: alias still present after unload")
)
