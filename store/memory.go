package store

import (
	"sync"

	"github.com/arc-workspace/pagekit/types"
)

// MemoryAdapter keeps page snapshots in a map. Useful for tests and
// ephemeral sessions.
type MemoryAdapter struct {
	mu    sync.RWMutex
	pages map[types.PageKey][]byte
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{pages: make(map[types.PageKey][]byte)}
}

// Load returns the stored snapshot for key, if any.
func (a *MemoryAdapter) Load(key types.PageKey) ([]byte, bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	raw, ok := a.pages[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

// Save stores the snapshot for key.
func (a *MemoryAdapter) Save(key types.PageKey, data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	raw := make([]byte, len(data))
	copy(raw, data)
	a.pages[key] = raw
	return nil
}

// Len reports how many pages are stored.
func (a *MemoryAdapter) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.pages)
}
