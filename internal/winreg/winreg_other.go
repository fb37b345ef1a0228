//go:build !windows

package winreg

// Live is unavailable off Windows; callers get ErrUnsupported at first use.
func Live(alias string) Registry {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) CreateKey(path string) (Key, error)  { return nil, ErrUnsupported }
func (unsupported) KeyExists(path string) (bool, error) { return false, ErrUnsupported }
