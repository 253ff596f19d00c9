// Package store owns the live snapshot of a page and its durable
// counterpart. A Session holds exactly one snapshot at a time (no
// history): mutations replace it synchronously, then the new value is
// persisted asynchronously through an Adapter keyed by (scope, page).
//
// Writes are optimistic and fire-and-forget: the in-memory snapshot
// is the source of truth for rendering, a failed durable write is
// logged and never rolled back. Concurrent editing of the same
// persisted page from multiple sessions is last-writer-wins with no
// conflict detection; the file adapter's lock only prevents torn
// files, not lost updates.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/arc-workspace/pagekit/types"
)

// Adapter durably stores page snapshots keyed by (scope, page). The
// ok return of Load distinguishes "nothing stored yet" from an empty
// value so the caller can fall back to the template's default.
type Adapter interface {
	Load(key types.PageKey) (data []byte, ok bool, err error)
	Save(key types.PageKey, data []byte) error
}

// Session binds one page's snapshot to an adapter.
type Session[T any] struct {
	mu      sync.Mutex
	adapter Adapter
	key     types.PageKey
	data    T
	logger  *slog.Logger
	writes  sync.WaitGroup
	saveMu  sync.Mutex
}

// Option configures a Session.
type Option[T any] func(*Session[T])

// WithLogger sets the logger used to report asynchronous persist
// failures. Without it, failures are silently dropped, matching the
// optimistic-update model.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(s *Session[T]) { s.logger = logger }
}

// Open loads the last durably-stored snapshot for key, or
// defaultValue when none exists yet.
func Open[T any](adapter Adapter, key types.PageKey, defaultValue T, opts ...Option[T]) (*Session[T], error) {
	s := &Session[T]{
		adapter: adapter,
		key:     key,
		data:    defaultValue,
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok, err := adapter.Load(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %s/%s: %w", key.Scope, key.Page, err)
	}
	if ok {
		var stored T
		if err := json.Unmarshal(raw, &stored); err != nil {
			return nil, fmt.Errorf("failed to decode page %s/%s: %w", key.Scope, key.Page, err)
		}
		s.data = stored
	}
	return s, nil
}

// Key returns the page identity this session is bound to.
func (s *Session[T]) Key() types.PageKey { return s.key }

// Data returns the current snapshot.
func (s *Session[T]) Data() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Set replaces the snapshot with v and schedules a durable write.
// Set is total: it never fails and performs no schema validation on
// v (garbage in, garbage stored).
func (s *Session[T]) Set(v T) {
	s.mu.Lock()
	s.data = v
	s.mu.Unlock()
	s.persistAsync()
}

// Update applies fn to the current snapshot and replaces it with the
// result, then schedules a durable write. fn must be pure.
func (s *Session[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.data = fn(s.data)
	s.mu.Unlock()
	s.persistAsync()
}

// Flush synchronously persists the current snapshot, after waiting
// for any in-flight asynchronous writes.
func (s *Session[T]) Flush() error {
	s.writes.Wait()
	return s.persist(s.Data())
}

// Close flushes and releases the session.
func (s *Session[T]) Close() error {
	return s.Flush()
}

// persistAsync writes whatever snapshot is current when the write
// runs. Saves are serialized by saveMu, so the final durable value is
// always the latest snapshot even when writes pile up.
func (s *Session[T]) persistAsync() {
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.persist(s.Data()); err != nil && s.logger != nil {
			s.logger.Error("page persist failed",
				"scope", s.key.Scope,
				"page", s.key.Page,
				"error", err)
		}
	}()
}

func (s *Session[T]) persist(v T) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode page %s/%s: %w", s.key.Scope, s.key.Page, err)
	}
	if err := s.adapter.Save(s.key, raw); err != nil {
		return fmt.Errorf("failed to save page %s/%s: %w", s.key.Scope, s.key.Page, err)
	}
	return nil
}
