//go:build !windows

package mount

import "errors"

// aliasExists has no live registry to consult off Windows. Tests inject
// their own checker through Options.
func aliasExists(alias string) (bool, error) {
	return false, errors.New("mount: registry alias check requires windows")
}
