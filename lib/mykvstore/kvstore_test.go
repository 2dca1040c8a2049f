package mykvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKVStore(t *testing.T) {
	c := context.TODO()
	kv, cleanup, err := newInMemoryKVStore(c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := kv.Get(c, "cart")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put and get", func(t *testing.T) {
		err := kv.Put(c, "cart", []byte(`[{"id":"1"}]`))
		assert.NoError(t, err)

		data, found, err := kv.Get(c, "cart")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`[{"id":"1"}]`), data)
	})

	t.Run("Overwrite is last-writer-wins", func(t *testing.T) {
		err := kv.Put(c, "cart", []byte(`[]`))
		assert.NoError(t, err)

		data, found, err := kv.Get(c, "cart")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`[]`), data)
	})

	t.Run("Delete", func(t *testing.T) {
		err := kv.Delete(c, "cart")
		assert.NoError(t, err)

		_, found, err := kv.Get(c, "cart")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Delete unknown key is no-op", func(t *testing.T) {
		err := kv.Delete(c, "unknown")
		assert.NoError(t, err)
	})
}
