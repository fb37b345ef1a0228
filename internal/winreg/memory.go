package winreg

import (
	"strings"
	"sync"

	"github.com/joshuapare/hiveprep/pkg/settings"
)

// Memory is an in-memory Registry used by tests. Keys are stored by their
// full relative path; values by key path and name, last write wins.
type Memory struct {
	mu     sync.Mutex
	keys   map[string]bool
	values map[string]map[string]settings.Value
}

// NewMemory returns an empty in-memory registry.
func NewMemory() *Memory {
	return &Memory{
		keys:   make(map[string]bool),
		values: make(map[string]map[string]settings.Value),
	}
}

func (m *Memory) CreateKey(path string) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Create intermediates the way RegCreateKeyEx does.
	segs := strings.Split(path, `\`)
	for i := range segs {
		m.keys[strings.Join(segs[:i+1], `\`)] = true
	}
	if m.values[path] == nil {
		m.values[path] = make(map[string]settings.Value)
	}
	return &memoryKey{reg: m, path: path}, nil
}

func (m *Memory) KeyExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if path == "" {
		return true, nil
	}
	return m.keys[path], nil
}

// Value returns the stored value and whether it exists.
func (m *Memory) Value(path, name string) (settings.Value, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[path][name]
	return v, ok
}

// ValueCount returns the total number of stored values.
func (m *Memory) ValueCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, vals := range m.values {
		n += len(vals)
	}
	return n
}

type memoryKey struct {
	reg    *Memory
	path   string
	closed bool
}

func (k *memoryKey) SetValue(name string, value settings.Value) error {
	if k.closed {
		return ErrClosed
	}
	k.reg.mu.Lock()
	defer k.reg.mu.Unlock()
	k.reg.values[k.path][name] = value
	return nil
}

func (k *memoryKey) Close() error {
	k.closed = true
	return nil
}
