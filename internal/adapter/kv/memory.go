// Package kv provides the key-value stores behind the client cache.
package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"

	"jobboard-ads/internal/core/port"
)

// DefaultMemorySize is the freecache arena size used when none is given.
const DefaultMemorySize = 64 * 1024 * 1024

// minMemorySize is the smallest arena freecache allocates.
const minMemorySize = 512 * 1024

var _ port.KeyValueStore = (*Memory)(nil)

// Memory is an in-process store backed by freecache. Entries never expire
// but may be evicted once the arena is full. freecache rejects entries
// larger than 1/1024 of the arena, so the arena bounds the size of one
// user's campaign collection.
type Memory struct {
	cache *freecache.Cache
	size  int
}

// NewMemory creates a freecache arena of size bytes.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}
	size = max(size, minMemorySize)
	return &Memory{cache: freecache.NewCache(size), size: size}
}

// MaxEntrySize is the largest key plus value the arena accepts.
func (m *Memory) MaxEntrySize() int {
	return m.size / 1024
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	data, err := m.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Set stores value under key without expiry.
func (m *Memory) Set(_ context.Context, key, value string) error {
	err := m.cache.Set([]byte(key), []byte(value), 0)
	if errors.Is(err, freecache.ErrLargeEntry) {
		return fmt.Errorf("value of %d bytes exceeds the %d byte entry limit, raise CACHE_MEMORY_SIZE: %w",
			len(value), m.MaxEntrySize(), err)
	}
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.cache.Del([]byte(key))
	return nil
}
