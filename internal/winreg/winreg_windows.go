//go:build windows

package winreg

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/joshuapare/hiveprep/pkg/settings"
)

// liveRegistry writes to the real registry under HKEY_USERS\<alias>.
type liveRegistry struct {
	alias string
}

// Live returns a Registry rooted at HKEY_USERS\<alias>, the key a loaded
// hive is addressed under.
func Live(alias string) Registry {
	return &liveRegistry{alias: alias}
}

func (r *liveRegistry) CreateKey(path string) (Key, error) {
	full := r.alias + `\` + path
	// RegCreateKeyEx creates missing intermediate keys in one call.
	k, _, err := registry.CreateKey(registry.USERS, full, registry.ALL_ACCESS)
	if err != nil {
		return nil, fmt.Errorf("failed to create key HKU\\%s: %w", full, err)
	}
	return &liveKey{key: k}, nil
}

func (r *liveRegistry) KeyExists(path string) (bool, error) {
	full := r.alias
	if path != "" {
		full += `\` + path
	}
	k, err := registry.OpenKey(registry.USERS, full, registry.QUERY_VALUE)
	if err == registry.ErrNotExist {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open key HKU\\%s: %w", full, err)
	}
	k.Close()
	return true, nil
}

type liveKey struct {
	key registry.Key
}

func (k *liveKey) SetValue(name string, value settings.Value) error {
	switch value.Kind {
	case settings.KindString:
		return k.key.SetStringValue(name, value.Str)
	case settings.KindExpandString:
		return k.key.SetExpandStringValue(name, value.Str)
	case settings.KindDWORD:
		return k.key.SetDWordValue(name, uint32(value.Num))
	case settings.KindQWORD:
		return k.key.SetQWordValue(name, value.Num)
	case settings.KindMultiString:
		return k.key.SetStringsValue(name, value.Strs)
	case settings.KindBinary:
		return k.key.SetBinaryValue(name, value.Bytes)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint32(value.Kind))
	}
}

func (k *liveKey) Close() error {
	return k.key.Close()
}
