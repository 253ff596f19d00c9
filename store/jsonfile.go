package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/arc-workspace/pagekit/types"
)

// envelope is the on-disk JSON structure wrapping a page snapshot.
type envelope struct {
	Version   string          `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Data      json.RawMessage `json:"data"`
}

const envelopeVersion = "1.0"

// FileAdapter stores each page as a JSON file under root, one file
// per (scope, page). Writes go to a temp file and are renamed into
// place; a flock lock file per page guards against torn reads and
// writes from concurrent processes.
type FileAdapter struct {
	root string
}

// NewFileAdapter creates a file-backed adapter rooted at dir.
func NewFileAdapter(dir string) *FileAdapter {
	return &FileAdapter{root: dir}
}

func (a *FileAdapter) path(key types.PageKey) string {
	return filepath.Join(a.root, sanitize(key.Scope), sanitize(key.Page)+".json")
}

// sanitize keeps scope/page components safe as path segments.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, string(filepath.Separator), "_")
	s = strings.ReplaceAll(s, "..", "_")
	if s == "" {
		s = "_"
	}
	return s
}

// Load reads the stored snapshot for key. ok is false when no file
// exists yet.
func (a *FileAdapter) Load(key types.PageKey) ([]byte, bool, error) {
	path := a.path(key)

	// No file means no page yet; skip the lock so we don't create the
	// scope directory just to read nothing.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, false, nil
	}

	unlock, err := a.lock(path)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read page file: %w", err)
	}
	if len(raw) == 0 {
		return nil, false, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false, fmt.Errorf("failed to parse page file: %w", err)
	}
	return env.Data, true, nil
}

// Save writes the snapshot for key, preserving the envelope's
// original creation time across rewrites.
func (a *FileAdapter) Save(key types.PageKey, data []byte) error {
	path := a.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create page directory: %w", err)
	}

	unlock, err := a.lock(path)
	if err != nil {
		return err
	}
	defer unlock()

	now := time.Now()
	env := envelope{
		Version:   envelopeVersion,
		CreatedAt: now,
		UpdatedAt: now,
		Data:      data,
	}
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		var old envelope
		if err := json.Unmarshal(prev, &old); err == nil && !old.CreatedAt.IsZero() {
			env.CreatedAt = old.CreatedAt
		}
	}

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal page file: %w", err)
	}

	// Write to a temp file then rename (atomic on most filesystems).
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename page file: %w", err)
	}
	return nil
}

// lock acquires the page's flock lock file, returning the release
// function.
func (a *FileAdapter) lock(path string) (func(), error) {
	fl := flock.New(path + ".lock")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire page lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire page lock for %s", path)
	}
	return func() { _ = fl.Unlock() }, nil
}
