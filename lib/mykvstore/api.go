package mykvstore

import (
	"context"
	"os"
)

// Store is a browser-local-storage-like key-value store: opaque bytes
// under a string key, last-writer-wins.
//
//go:generate mockgen -source=api.go -package mykvstore -destination kvstore_mock.go Store
type Store interface {
	Put(c context.Context, key string, data []byte) error
	Get(c context.Context, key string) ([]byte, bool, error)
	Delete(c context.Context, key string) error
}

func New(c context.Context) (Store, func(), error) {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		return newGcloudKVStore(c)
	}

	return newInMemoryKVStore(c)
}
