package tokencache

import (
	"context"
	"time"

	"github.com/dmitrymomot/uatoken/pkg/uatoken"
)

// DefaultMemorySize is the capacity used by NewMemory when size is not positive.
const DefaultMemorySize = 10_000

// Memory is an in-process LRU tier keyed by the raw User-Agent.
type Memory struct {
	lru *lru[string, *uatoken.Tokens]
}

// NewMemory creates an LRU tier holding up to size entries. A positive ttl
// expires entries that long after they were stored; zero keeps them until
// evicted.
func NewMemory(size int, ttl time.Duration) *Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}
	return &Memory{lru: newLRU[string, *uatoken.Tokens](size, ttl)}
}

func (m *Memory) Name() string { return "memory" }

// Get never fails.
func (m *Memory) Get(_ context.Context, ua string) (*uatoken.Tokens, bool, error) {
	t, ok := m.lru.get(ua)
	return t, ok, nil
}

func (m *Memory) Set(_ context.Context, ua string, tokens *uatoken.Tokens) error {
	if tokens != nil {
		m.lru.put(ua, tokens)
	}
	return nil
}

// Len returns the number of cached entries, including expired ones not yet
// dropped.
func (m *Memory) Len() int { return m.lru.len() }

// Purge drops every entry.
func (m *Memory) Purge() { m.lru.clear() }
