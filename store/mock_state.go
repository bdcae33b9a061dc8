package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// MockState is the in-memory backend used by tests and the local debug mode. When a filename
// is set every write is mirrored to a JSON file so a run can be inspected afterwards.
type MockState struct {
	mu       sync.RWMutex
	db       map[string][]byte
	filename string
}

func NewMockState() *MockState {
	return &MockState{db: make(map[string][]byte)}
}

// NewFileMockState loads filename if it exists and keeps it in sync on every write.
func NewFileMockState(filename string) (*MockState, error) {
	m := &MockState{db: make(map[string][]byte), filename: filename}
	if err := m.loadFromFile(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MockState) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.db[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), val...), true, nil
}

func (m *MockState) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.db[key] = append([]byte(nil), value...)
	return m.saveToFile()
}

func (m *MockState) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.db, key)
	return m.saveToFile()
}

func (m *MockState) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for k := range m.db {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return sortedKeys(out), nil
}

func (m *MockState) Apply(_ context.Context, b *Batch) error {
	for _, o := range b.ops {
		if o.key == "" {
			return ErrEmptyKey
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range b.ops {
		if o.del {
			delete(m.db, o.key)
			continue
		}
		m.db[o.key] = o.value
	}
	return m.saveToFile()
}

// Len reports the number of stored keys.
func (m *MockState) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.db)
}

// saveToFile writes the full map to the JSON file. Keys are binary so they are hex encoded,
// values end up base64 encoded.
func (m *MockState) saveToFile() error {
	if m.filename == "" {
		return nil
	}
	dump := make(map[string][]byte, len(m.db))
	for k, v := range m.db {
		dump[hex.EncodeToString([]byte(k))] = v
	}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.filename, data, 0644)
}

func (m *MockState) loadFromFile() error {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var dump map[string][]byte
	if err := json.Unmarshal(data, &dump); err != nil {
		return err
	}
	for k, v := range dump {
		key, err := hex.DecodeString(k)
		if err != nil {
			return fmt.Errorf("state file key %q: %w", k, err)
		}
		m.db[string(key)] = v
	}
	return nil
}
