package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shoestore/lib/mykvstore"
)

func TestCartStore(t *testing.T) {
	c := context.TODO()

	lines := []Line{
		{ID: "1", Name: "Running Shoe", Price: 99.99, ImageURL: "http://img/1", Quantity: 1},
		{ID: "2", Name: "Basketball Shoe", Price: 129.99, ImageURL: "http://img/2", Quantity: 2},
	}

	t.Run("Absent key yields empty cart", func(t *testing.T) {
		sut, _ := newStore(t)

		got, reset, err := sut.Load(c)
		assert.NoError(t, err)
		assert.False(t, reset)
		assert.Empty(t, got)
	})

	t.Run("Save and load round-trip", func(t *testing.T) {
		sut, _ := newStore(t)

		err := sut.Save(c, lines)
		assert.NoError(t, err)

		got, reset, err := sut.Load(c)
		assert.NoError(t, err)
		assert.False(t, reset)
		assert.Equal(t, lines, got)
	})

	t.Run("Saving nil persists an empty cart", func(t *testing.T) {
		sut, kv := newStore(t)

		err := sut.Save(c, nil)
		assert.NoError(t, err)

		data, found, err := kv.Get(c, "cart")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"version":1,"lines":[]}`, string(data))
	})

	t.Run("Legacy bare array is still understood", func(t *testing.T) {
		sut, kv := newStore(t)

		data, err := json.Marshal(lines)
		assert.NoError(t, err)
		err = kv.Put(c, "cart", data)
		assert.NoError(t, err)

		got, reset, err := sut.Load(c)
		assert.NoError(t, err)
		assert.False(t, reset)
		assert.Equal(t, lines, got)
	})

	t.Run("Corrupt entry is cleared and reported", func(t *testing.T) {
		sut, kv := newStore(t)

		err := kv.Put(c, "cart", []byte(`{"version":`))
		assert.NoError(t, err)

		got, reset, err := sut.Load(c)
		assert.NoError(t, err)
		assert.True(t, reset)
		assert.Empty(t, got)

		// the bad entry is gone: the next load starts clean
		_, found, err := kv.Get(c, "cart")
		assert.NoError(t, err)
		assert.False(t, found)

		got, reset, err = sut.Load(c)
		assert.NoError(t, err)
		assert.False(t, reset)
		assert.Empty(t, got)
	})

	t.Run("Persisted format keeps the original field names", func(t *testing.T) {
		sut, kv := newStore(t)

		err := sut.Save(c, lines[:1])
		assert.NoError(t, err)

		data, _, err := kv.Get(c, "cart")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"version":1,"lines":[{"id":"1","name":"Running Shoe","price":99.99,"imageUrl":"http://img/1","quantity":1}]}`, string(data))
	})
}

func newStore(t *testing.T) (*cartStore, mykvstore.Store) {
	kv, _, err := mykvstore.New(context.TODO())
	assert.NoError(t, err)
	return newCartStore(kv), kv
}
