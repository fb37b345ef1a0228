package mount

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and fails scripted subcommands.
type fakeRunner struct {
	calls [][]string
	fail  map[string]error    // keyed by reg.exe subcommand
	out   map[string]string   // output per subcommand
	onRun func(args []string)
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.onRun != nil {
		r.onRun(args)
	}
	sub := args[0]
	return []byte(r.out[sub]), r.fail[sub]
}

func (r *fakeRunner) subcommands() []string {
	subs := make([]string, len(r.calls))
	for i, c := range r.calls {
		subs[i] = c[1]
	}
	return subs
}

func writeTempHive(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "NTUSER.DAT")
	require.NoError(t, os.WriteFile(path, []byte("regf"), 0o644))
	return path
}

// stateMounter builds a Mounter whose alias existence tracks the fake
// runner's load/unload calls, the way the live registry behaves.
func stateMounter(t *testing.T, runner *fakeRunner, mounted *bool) *Mounter {
	t.Helper()
	prev := runner.onRun
	runner.onRun = func(args []string) {
		if prev != nil {
			prev(args)
		}
		if runner.fail[args[0]] != nil {
			return
		}
		switch args[0] {
		case "load":
			*mounted = true
		case "unload":
			*mounted = false
		}
	}
	return New("TestProfile", &Options{
		Runner: runner,
		Exists: func(alias string) (bool, error) { return *mounted, nil },
	})
}

func TestMountClean(t *testing.T) {
	runner := &fakeRunner{}
	mounted := false
	m := stateMounter(t, runner, &mounted)
	hive := writeTempHive(t)

	require.NoError(t, m.Mount(context.Background(), hive))

	require.Equal(t, []string{"load"}, runner.subcommands())
	assert.Equal(t, []string{"reg.exe", "load", `HKU\TestProfile`, hive}, runner.calls[0])
	assert.True(t, mounted)
}

func TestMountRemovesStaleAlias(t *testing.T) {
	runner := &fakeRunner{}
	mounted := true // stale mount from an aborted run
	m := stateMounter(t, runner, &mounted)
	hive := writeTempHive(t)

	require.NoError(t, m.Mount(context.Background(), hive))

	assert.Equal(t, []string{"unload", "load"}, runner.subcommands())
	assert.True(t, mounted)
}

func TestMountStaleUnloadFails(t *testing.T) {
	runner := &fakeRunner{
		fail: map[string]error{"unload": errors.New("exit status 1")},
		out:  map[string]string{"unload": "ERROR: Access is denied."},
	}
	mounted := true
	m := stateMounter(t, runner, &mounted)
	hive := writeTempHive(t)

	err := m.Mount(context.Background(), hive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale alias")
	assert.Contains(t, err.Error(), "Access is denied")
	// The load must not have been attempted.
	assert.Equal(t, []string{"unload"}, runner.subcommands())
}

func TestMountLoadFails(t *testing.T) {
	runner := &fakeRunner{
		fail: map[string]error{"load": errors.New("exit status 1")},
		out:  map[string]string{"load": "ERROR: The process cannot access the file."},
	}
	mounted := false
	m := stateMounter(t, runner, &mounted)
	hive := writeTempHive(t)

	err := m.Mount(context.Background(), hive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load hive")
	assert.Contains(t, err.Error(), "cannot access the file")
	assert.False(t, mounted)
}

func TestMountAliasUnavailableAfterLoad(t *testing.T) {
	runner := &fakeRunner{}
	m := New("TestProfile", &Options{
		Runner: runner,
		// Load reports success but the alias never appears.
		Exists: func(alias string) (bool, error) { return false, nil },
	})
	hive := writeTempHive(t)

	err := m.Mount(context.Background(), hive)
	require.ErrorIs(t, err, ErrAliasUnavailable)
	// The load is rolled back.
	assert.Equal(t, []string{"load", "unload"}, runner.subcommands())
}

func TestMountMissingHiveFile(t *testing.T) {
	runner := &fakeRunner{}
	mounted := false
	m := stateMounter(t, runner, &mounted)

	err := m.Mount(context.Background(), filepath.Join(t.TempDir(), "missing.dat"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hive file not found")
	// No reg.exe invocation at all.
	assert.Empty(t, runner.calls)
}

func TestUnmountNotMounted(t *testing.T) {
	runner := &fakeRunner{}
	mounted := false
	m := stateMounter(t, runner, &mounted)

	err := m.Unmount(context.Background())
	require.ErrorIs(t, err, ErrNotMounted)
	assert.Empty(t, runner.calls)
}

func TestUnmountFails(t *testing.T) {
	runner := &fakeRunner{
		fail: map[string]error{"unload": errors.New("exit status 1")},
		out:  map[string]string{"unload": "ERROR: Access is denied."},
	}
	mounted := true
	m := stateMounter(t, runner, &mounted)

	err := m.Unmount(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unload hive")
	assert.True(t, mounted)
}

func TestUnmountDanglingAlias(t *testing.T) {
	runner := &fakeRunner{}
	m := New("TestProfile", &Options{
		Runner: runner,
		// Unload reports success but the alias key stays.
		Exists: func(alias string) (bool, error) { return true, nil },
	})

	err := m.Unmount(context.Background())
	require.ErrorIs(t, err, ErrDanglingAlias)
}

func TestMountThenUnmountLeavesNoAlias(t *testing.T) {
	runner := &fakeRunner{}
	mounted := false
	m := stateMounter(t, runner, &mounted)
	hive := writeTempHive(t)

	require.NoError(t, m.Mount(context.Background(), hive))
	require.NoError(t, m.Unmount(context.Background()))

	assert.Equal(t, []string{"load", "unload"}, runner.subcommands())
	assert.False(t, mounted, "alias key must be gone after unmount")
}

func TestKeyPath(t *testing.T) {
	m := New("DefaultProfile", nil)
	assert.Equal(t, "DefaultProfile", m.Alias())
	assert.Equal(t, `HKU\DefaultProfile`, m.KeyPath())
}
