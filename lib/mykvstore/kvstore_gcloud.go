package mykvstore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/datastore"
)

const kind = "KeyValue"

type blobEntity struct {
	Value []byte `datastore:",noindex"`
}

type gcloudKVStore struct {
	client *datastore.Client
}

func newGcloudKVStore(c context.Context) (*gcloudKVStore, func(), error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	client, err := datastore.NewClient(c, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating datastore-client: %s", err)
	}

	return &gcloudKVStore{
			client: client,
		}, func() {
			client.Close()
		}, nil
}

func (s *gcloudKVStore) Put(c context.Context, key string, data []byte) error {
	_, err := s.client.Put(c, datastore.NameKey(kind, key, nil), &blobEntity{Value: data})
	if err != nil {
		return fmt.Errorf("error storing entity %s with key %s: %s", kind, key, err)
	}

	return nil
}

func (s *gcloudKVStore) Get(c context.Context, key string) ([]byte, bool, error) {
	entity := blobEntity{}

	err := s.client.Get(c, datastore.NameKey(kind, key, nil), &entity)
	if err != nil {
		if err == datastore.ErrNoSuchEntity {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error fetching entity %s with key %s: %s", kind, key, err)
	}

	return entity.Value, true, nil
}

func (s *gcloudKVStore) Delete(c context.Context, key string) error {
	err := s.client.Delete(c, datastore.NameKey(kind, key, nil))
	if err != nil && err != datastore.ErrNoSuchEntity {
		return fmt.Errorf("error deleting entity %s with key %s: %s", kind, key, err)
	}

	return nil
}
