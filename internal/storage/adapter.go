package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tgienger/stt/internal/debug"
	"github.com/tgienger/stt/internal/models"
)

// DefaultKey is the blob key holding the forest
const DefaultKey = "tasks"

// BlobStore is a string-keyed value store. Get returns ok=false for a
// missing key.
type BlobStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Adapter saves and loads the whole forest under a single key.
type Adapter struct {
	store BlobStore
	key   string
}

// NewAdapter creates an adapter using DefaultKey
func NewAdapter(store BlobStore) *Adapter {
	return &Adapter{store: store, key: DefaultKey}
}

// Save writes the forest
func (a *Adapter) Save(forest models.Forest) error {
	start := time.Now()
	data, err := Encode(forest)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := a.store.Set(a.key, string(data)); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	debug.LogTiming("save", time.Since(start))
	return nil
}

// Load reads the forest. A missing key or unreadable content yields an empty
// forest; only store failures are returned as errors.
func (a *Adapter) Load() (models.Forest, error) {
	value, ok, err := a.store.Get(a.key)
	if err != nil {
		return models.Forest{}, fmt.Errorf("load tasks: %w", err)
	}
	if !ok || value == "" {
		return models.Forest{}, nil
	}
	forest, err := Decode([]byte(value))
	if err != nil {
		log.Printf("warning: stored tasks are unreadable, starting empty: %v", err)
		return models.Forest{}, nil
	}
	return forest, nil
}

// ExportFileName returns the export file name for the given day
func ExportFileName(now time.Time) string {
	return "stt-export-" + now.Format("2006-01-02") + ".json"
}

// Export writes a pretty-printed snapshot to path
func Export(path string, forest models.Forest) error {
	data, err := EncodePretty(forest)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadSnapshot reads and validates an exported snapshot
func ReadSnapshot(path string) (models.Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// MemoryStore is an in-memory BlobStore
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
