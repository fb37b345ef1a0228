package settings

import (
	"fmt"
	"sort"
	"strings"
)

// Kind enumerates the registry value types a Setting can carry. The numeric
// values match the Windows registry type codes.
type Kind uint32

const (
	KindString       Kind = 1  // REG_SZ
	KindExpandString Kind = 2  // REG_EXPAND_SZ
	KindBinary       Kind = 3  // REG_BINARY
	KindDWORD        Kind = 4  // REG_DWORD
	KindMultiString  Kind = 7  // REG_MULTI_SZ
	KindQWORD        Kind = 11 // REG_QWORD
)

// String returns the Windows registry type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "REG_SZ"
	case KindExpandString:
		return "REG_EXPAND_SZ"
	case KindBinary:
		return "REG_BINARY"
	case KindDWORD:
		return "REG_DWORD"
	case KindMultiString:
		return "REG_MULTI_SZ"
	case KindQWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("REG_UNKNOWN(%d)", uint32(k))
	}
}

// Value is a typed registry value. The kind determines which payload field
// is meaningful and the on-disk value type used when writing.
type Value struct {
	Kind  Kind
	Str   string
	Strs  []string
	Num   uint64
	Bytes []byte
}

// String returns a REG_SZ value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// ExpandString returns a REG_EXPAND_SZ value.
func ExpandString(s string) Value { return Value{Kind: KindExpandString, Str: s} }

// DWORD returns a REG_DWORD value.
func DWORD(v uint32) Value { return Value{Kind: KindDWORD, Num: uint64(v)} }

// QWORD returns a REG_QWORD value.
func QWORD(v uint64) Value { return Value{Kind: KindQWORD, Num: v} }

// MultiString returns a REG_MULTI_SZ value.
func MultiString(strs ...string) Value { return Value{Kind: KindMultiString, Strs: strs} }

// Binary returns a REG_BINARY value.
func Binary(data []byte) Value { return Value{Kind: KindBinary, Bytes: data} }

// Display renders the value payload for operator-facing listings.
func (v Value) Display() string {
	switch v.Kind {
	case KindString, KindExpandString:
		return fmt.Sprintf("%q", v.Str)
	case KindDWORD:
		return fmt.Sprintf("0x%08x", uint32(v.Num))
	case KindQWORD:
		return fmt.Sprintf("0x%016x", v.Num)
	case KindMultiString:
		return fmt.Sprintf("%q", v.Strs)
	case KindBinary:
		parts := make([]string, len(v.Bytes))
		for i, b := range v.Bytes {
			parts[i] = fmt.Sprintf("%02x", b)
		}
		return strings.Join(parts, ",")
	default:
		return "<unknown>"
	}
}

// Setting is one registry key path under the mounted hive together with the
// named values to write there. Paths are relative to the hive root and use
// backslash separators.
type Setting struct {
	Path   string
	Values map[string]Value
}

// ValueNames returns the value names in deterministic (sorted) order.
// Application and export both iterate values in this order.
func (s Setting) ValueNames() []string {
	names := make([]string, 0, len(s.Values))
	for name := range s.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that the setting is structurally usable: a non-empty
// relative path with no empty segments, and at least one value.
func (s Setting) Validate() error {
	if s.Path == "" {
		return ErrEmptyPath
	}
	if strings.HasPrefix(s.Path, `\`) || strings.HasSuffix(s.Path, `\`) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, s.Path)
	}
	for _, seg := range strings.Split(s.Path, `\`) {
		if seg == "" {
			return fmt.Errorf("%w: %q", ErrInvalidPath, s.Path)
		}
	}
	if len(s.Values) == 0 {
		return fmt.Errorf("%w: %q", ErrNoValues, s.Path)
	}
	return nil
}

// ValidateAll validates every setting in the list.
func ValidateAll(list []Setting) error {
	for _, s := range list {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
