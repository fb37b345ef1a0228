// Package mount loads and unloads a registry hive file under a temporary
// alias key in HKEY_USERS, driving reg.exe and judging each step by its
// exit status.
package mount

import (
	"context"
	"fmt"
	"os"
)

// regExe is the Windows registry console tool used for hive load/unload.
const regExe = "reg.exe"

// AliasChecker reports whether HKEY_USERS\<alias> currently exists.
type AliasChecker func(alias string) (bool, error)

// Options overrides the Mounter's external dependencies. Zero fields keep
// the platform defaults (reg.exe and a live registry check).
type Options struct {
	Runner Runner
	Exists AliasChecker
}

// Mounter loads a hive file under HKEY_USERS\<alias> and unloads it again.
// It is not safe for concurrent use; the whole tool is sequential.
type Mounter struct {
	alias  string
	runner Runner
	exists AliasChecker
}

// New returns a Mounter for the given alias. opts may be nil.
func New(alias string, opts *Options) *Mounter {
	m := &Mounter{
		alias:  alias,
		runner: ExecRunner{},
		exists: aliasExists,
	}
	if opts != nil {
		if opts.Runner != nil {
			m.runner = opts.Runner
		}
		if opts.Exists != nil {
			m.exists = opts.Exists
		}
	}
	return m
}

// Alias returns the alias name the hive is addressed under.
func (m *Mounter) Alias() string { return m.alias }

// KeyPath returns the full registry path of the mount point.
func (m *Mounter) KeyPath() string { return `HKU\` + m.alias }

// Mount loads the hive file at path under HKEY_USERS\<alias>. A stale alias
// left by an earlier run is forcibly unloaded first. After a successful
// load the alias key must be openable; if it is not, the load is rolled
// back and the mount fails.
func (m *Mounter) Mount(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("hive file not found: %s: %w", path, err)
	}

	stale, err := m.exists(m.alias)
	if err != nil {
		return fmt.Errorf("failed to check alias %s: %w", m.KeyPath(), err)
	}
	if stale {
		if out, err := m.runner.Run(ctx, regExe, "unload", m.KeyPath()); err != nil {
			return fmt.Errorf("failed to remove stale alias %s: %w: %s", m.KeyPath(), err, trimOutput(out))
		}
	}

	if out, err := m.runner.Run(ctx, regExe, "load", m.KeyPath(), path); err != nil {
		return fmt.Errorf("failed to load hive %s at %s: %w: %s", path, m.KeyPath(), err, trimOutput(out))
	}

	ok, err := m.exists(m.alias)
	if err == nil && !ok {
		err = ErrAliasUnavailable
	}
	if err != nil {
		// Roll back the load so a half-mounted hive is not left behind.
		m.runner.Run(ctx, regExe, "unload", m.KeyPath())
		return fmt.Errorf("alias %s unusable after load: %w", m.KeyPath(), err)
	}
	return nil
}

// Unmount resolves the alias and unloads the hive. It fails if the alias
// does not exist, if reg.exe exits nonzero, or if the alias key is still
// present afterwards.
func (m *Mounter) Unmount(ctx context.Context) error {
	ok, err := m.exists(m.alias)
	if err != nil {
		return fmt.Errorf("failed to check alias %s: %w", m.KeyPath(), err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotMounted, m.KeyPath())
	}

	if out, err := m.runner.Run(ctx, regExe, "unload", m.KeyPath()); err != nil {
		return fmt.Errorf("failed to unload hive at %s: %w: %s", m.KeyPath(), err, trimOutput(out))
	}

	ok, err = m.exists(m.alias)
	if err != nil {
		return fmt.Errorf("failed to check alias %s: %w", m.KeyPath(), err)
	}
	if ok {
		return fmt.Errorf("%w: %s", ErrDanglingAlias, m.KeyPath())
	}
	return nil
}
