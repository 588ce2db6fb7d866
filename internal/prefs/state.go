// Package prefs persists small pieces of dashboard state (theme, table sort, filters)
// under string keys. A stored value is replaced whole on every write.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// ErrNotFound is returned by a KV when the key has never been written.
var ErrNotFound = errors.New("prefs: key not found")

type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type Source string

const (
	SourceStored    Source = "stored"
	SourceAbsent    Source = "absent"
	SourceMalformed Source = "malformed"
)

// Loaded is the outcome of reading a key. Value holds the default unless Source is SourceStored.
// Err carries the decode error when Source is SourceMalformed.
type Loaded[T any] struct {
	Value  T
	Source Source
	Err    error
}

// Load reads key and decodes it as JSON. A missing or undecodable value yields def;
// only KV failures are returned as errors.
func Load[T any](ctx context.Context, kv KV, key string, def T) (Loaded[T], error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) || (err == nil && len(raw) == 0) {
		return Loaded[T]{Value: def, Source: SourceAbsent}, nil
	}
	if err != nil {
		return Loaded[T]{}, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return Loaded[T]{Value: def, Source: SourceMalformed, Err: err}, nil
	}
	return Loaded[T]{Value: v, Source: SourceStored}, nil
}

// Save encodes v as JSON and writes it under key.
func Save[T any](ctx context.Context, kv KV, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, b)
}

// State is a typed value bound to one key: initialized from the store, written back on
// every Set. It is for Go callers that own a single preference; the HTTP handlers serve
// arbitrary keys as raw JSON and use Load and Save directly.
type State[T any] struct {
	kv  KV
	key string

	mu     sync.RWMutex
	value  T
	loaded Loaded[T]
}

func NewState[T any](ctx context.Context, kv KV, key string, def T) (*State[T], error) {
	l, err := Load(ctx, kv, key, def)
	if err != nil {
		return nil, err
	}
	return &State[T]{kv: kv, key: key, value: l.Value, loaded: l}, nil
}

func (s *State[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Initial reports how the state was initialized.
func (s *State[T]) Initial() Loaded[T] {
	return s.loaded
}

// Set replaces the value and persists it. On write failure the in-memory value is unchanged.
func (s *State[T]) Set(ctx context.Context, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := Save(ctx, s.kv, s.key, v); err != nil {
		return err
	}
	s.value = v
	return nil
}
