// Package winreg abstracts the live Windows registry behind small
// interfaces so the provisioning flow can be exercised with an in-memory
// implementation on any platform.
package winreg

import "github.com/joshuapare/hiveprep/pkg/settings"

// Key is an open, writable registry key.
type Key interface {
	// SetValue writes a single named value, choosing the on-disk type from
	// the value's kind.
	SetValue(name string, value settings.Value) error
	Close() error
}

// Registry is a writable view rooted at a mounted hive.
type Registry interface {
	// CreateKey opens the key at the given backslash-separated path relative
	// to the hive root, creating it and any missing intermediate keys.
	CreateKey(path string) (Key, error)

	// KeyExists reports whether the key at path exists under the hive root.
	KeyExists(path string) (bool, error)
}
