package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shoestore/services/checkoutapi"
)

func TestApplySameAddress(t *testing.T) {
	shipping := checkoutapi.Address{
		FirstName: "Jane",
		LastName:  "Doe",
		Address:   "12 Elm St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62704",
		Country:   "USA",
	}
	billing := checkoutapi.Address{
		FirstName: "John",
		LastName:  "Smith",
		Address:   "34 Oak Ave",
		City:      "Shelbyville",
		State:     "IL",
		ZipCode:   "62565",
		Country:   "USA",
	}

	t.Run("Enabling copies every shipping field", func(t *testing.T) {
		got := ApplySameAddress(shipping, billing, true)
		assert.Equal(t, shipping, got)
	})

	t.Run("Enabling overwrites previously entered billing fields", func(t *testing.T) {
		got := ApplySameAddress(shipping, billing, true)
		assert.NotEqual(t, billing, got)
	})

	t.Run("Disabling clears every billing field", func(t *testing.T) {
		got := ApplySameAddress(shipping, billing, false)
		assert.Equal(t, checkoutapi.Address{}, got)
	})

	t.Run("Copy is a snapshot, not a reference", func(t *testing.T) {
		got := ApplySameAddress(shipping, checkoutapi.Address{}, true)
		shipping.City = "Capital City"
		assert.Equal(t, "Springfield", got.City)
	})
}
