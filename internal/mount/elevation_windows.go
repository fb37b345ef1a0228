//go:build windows

package mount

import "golang.org/x/sys/windows"

// Elevated reports whether the process token is elevated. reg.exe refuses
// hive loads from a non-elevated console.
func Elevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
