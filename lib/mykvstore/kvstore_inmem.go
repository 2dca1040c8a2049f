package mykvstore

import (
	"context"
	"sync"
)

type inMemoryKVStore struct {
	sync.Mutex
	items map[string][]byte
}

func newInMemoryKVStore(c context.Context) (*inMemoryKVStore, func(), error) {
	return &inMemoryKVStore{
		items: make(map[string][]byte),
	}, func() {}, nil
}

func (s *inMemoryKVStore) Put(c context.Context, key string, data []byte) error {
	s.Lock()
	defer s.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	s.items[key] = copied

	return nil
}

func (s *inMemoryKVStore) Get(c context.Context, key string) ([]byte, bool, error) {
	s.Lock()
	defer s.Unlock()

	data, exists := s.items[key]
	if !exists {
		return nil, false, nil
	}

	copied := make([]byte, len(data))
	copy(copied, data)

	return copied, true, nil
}

func (s *inMemoryKVStore) Delete(c context.Context, key string) error {
	s.Lock()
	defer s.Unlock()

	delete(s.items, key)

	return nil
}
