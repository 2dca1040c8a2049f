package cart

import (
	"context"
	"encoding/json"

	"github.com/MarcGrol/shoestore/lib/myerrors"
	"github.com/MarcGrol/shoestore/lib/mykvstore"
)

const (
	// The whole cart lives under this single well-known key.
	storageKey = "cart"

	storageVersion = 1
)

type storedCart struct {
	Version int    `json:"version"`
	Lines   []Line `json:"lines"`
}

type cartStore struct {
	kv mykvstore.Store
}

func newCartStore(kv mykvstore.Store) *cartStore {
	return &cartStore{
		kv: kv,
	}
}

// Load reads the persisted cart. An absent key yields an empty cart.
// A corrupt entry is cleared so the next load starts clean; reset reports
// that this happened.
func (s *cartStore) Load(c context.Context) (lines []Line, reset bool, err error) {
	data, found, err := s.kv.Get(c, storageKey)
	if err != nil {
		return nil, false, myerrors.NewInternalError(err)
	}
	if !found {
		return []Line{}, false, nil
	}

	stored := storedCart{}
	if err := json.Unmarshal(data, &stored); err == nil && stored.Version > 0 {
		if stored.Lines == nil {
			stored.Lines = []Line{}
		}
		return stored.Lines, false, nil
	}

	// earlier versions persisted a bare array of lines
	legacy := []Line{}
	if err := json.Unmarshal(data, &legacy); err == nil {
		return legacy, false, nil
	}

	err = s.kv.Delete(c, storageKey)
	if err != nil {
		return nil, false, myerrors.NewInternalError(err)
	}

	return []Line{}, true, nil
}

// Save overwrites the full persisted cart, last-writer-wins.
func (s *cartStore) Save(c context.Context, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}

	data, err := json.Marshal(storedCart{
		Version: storageVersion,
		Lines:   lines,
	})
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	err = s.kv.Put(c, storageKey, data)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}
