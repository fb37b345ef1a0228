//go:build windows

package mount

import (
	"golang.org/x/sys/windows/registry"
)

// aliasExists checks for HKEY_USERS\<alias> in the live registry.
func aliasExists(alias string) (bool, error) {
	k, err := registry.OpenKey(registry.USERS, alias, registry.QUERY_VALUE)
	if err == registry.ErrNotExist {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	k.Close()
	return true, nil
}
