//go:build !windows

package mount

// Elevated always reports true off Windows; the mount itself will fail
// long before privileges matter.
func Elevated() bool {
	return true
}
