package offline

import (
	"context"
	"sort"
	"sync"
)

// Compile-time interface checks.
var (
	_ BucketStore = (*MemoryStore)(nil)
	_ BucketStore = (*SQLiteStore)(nil)
)

// MemoryStore is an in-memory BucketStore. Safe for concurrent access.
// Used in tests and as a throwaway cache when no path is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string]*Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]map[string]*Entry),
	}
}

func (s *MemoryStore) Get(ctx context.Context, bucket, url string) (*Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.buckets[bucket]
	if !ok {
		return nil, false, nil
	}
	entry, ok := entries[url]
	if !ok {
		return nil, false, nil
	}
	return entry, true, nil
}

func (s *MemoryStore) Put(ctx context.Context, bucket, url string, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buckets[bucket] == nil {
		s.buckets[bucket] = make(map[string]*Entry)
	}
	s.buckets[bucket][url] = entry
	return nil
}

func (s *MemoryStore) Buckets(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.buckets))
	for name, entries := range s.buckets {
		if len(entries) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) DeleteBucket(ctx context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.buckets, bucket)
	return nil
}

func (s *MemoryStore) TotalSize(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, entries := range s.buckets {
		for _, entry := range entries {
			total += entry.Size()
		}
	}
	return total, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
