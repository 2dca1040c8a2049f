package mystore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type session struct {
	UID     string
	Shopper string
	Done    bool
}

var (
	exampleSession = session{UID: "123", Shopper: "Jane", Done: false}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	ss, cleanup, err := newInMemoryStore[session](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ss.Get(c, exampleSession.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = ss.Put(c, exampleSession.UID, exampleSession)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		s, found, err := ss.Get(c, exampleSession.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, session{UID: "123", Shopper: "Jane", Done: false}, s)
	})

	t.Run("List", func(t *testing.T) {
		all, err := ss.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []session{exampleSession}, all)
	})

	t.Run("Update within transaction", func(t *testing.T) {
		err := ss.RunInTransaction(c, func(c context.Context) error {
			s, found, err := ss.Get(c, exampleSession.UID)
			assert.True(t, found)
			if err != nil {
				return err
			}
			s.Done = true
			return ss.Put(c, s.UID, s)
		})
		assert.NoError(t, err)

		s, found, err := ss.Get(c, exampleSession.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.True(t, s.Done)
	})

	t.Run("Rollback on error", func(t *testing.T) {
		err := ss.RunInTransaction(c, func(c context.Context) error {
			return fmt.Errorf("forced failure")
		})
		assert.Error(t, err)
	})
}
