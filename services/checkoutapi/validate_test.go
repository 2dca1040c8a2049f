package checkoutapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressValidate(t *testing.T) {
	testCases := []struct {
		name          string
		in            Address
		invalidFields []string
	}{
		{
			name:          "Valid address",
			in:            address,
			invalidFields: nil,
		},
		{
			name: "Valid address with zip+4",
			in: Address{
				FirstName: "Jane",
				LastName:  "Doe",
				Address:   "12 Elm St",
				City:      "Springfield",
				State:     "IL",
				ZipCode:   "62704-1234",
				Country:   "USA",
			},
			invalidFields: nil,
		},
		{
			name:          "Empty address fails on every field",
			in:            Address{},
			invalidFields: []string{"firstName", "lastName", "address", "city", "state", "zipCode", "country"},
		},
		{
			name: "Short first name",
			in: Address{
				FirstName: "J",
				LastName:  "Doe",
				Address:   "12 Elm St",
				City:      "Springfield",
				State:     "IL",
				ZipCode:   "62704",
				Country:   "USA",
			},
			invalidFields: []string{"firstName"},
		},
		{
			name: "Short street address",
			in: Address{
				FirstName: "Jane",
				LastName:  "Doe",
				Address:   "12",
				City:      "Springfield",
				State:     "IL",
				ZipCode:   "62704",
				Country:   "USA",
			},
			invalidFields: []string{"address"},
		},
		{
			name: "Malformed zip code",
			in: Address{
				FirstName: "Jane",
				LastName:  "Doe",
				Address:   "12 Elm St",
				City:      "Springfield",
				State:     "IL",
				ZipCode:   "6270",
				Country:   "USA",
			},
			invalidFields: []string{"zipCode"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errors := tc.in.Validate()

			assert.Equal(t, len(tc.invalidFields), len(errors))
			assert.Equal(t, len(tc.invalidFields) == 0, errors.IsValid())
			for _, field := range tc.invalidFields {
				assert.NotEmpty(t, errors.For(field), "expected error for field %s", field)
			}
		})
	}
}

func TestPaymentValidate(t *testing.T) {
	validPayment := Payment{
		CardholderName: "Jane Doe",
		CardNumber:     "4111111111111111",
		ExpiryDate:     "09/27",
		CVV:            "123",
	}

	t.Run("Valid payment", func(t *testing.T) {
		errors := validPayment.Validate()
		assert.True(t, errors.IsValid())
	})

	t.Run("Four digit cvv is valid", func(t *testing.T) {
		payment := validPayment
		payment.CVV = "1234"
		assert.True(t, payment.Validate().IsValid())
	})

	t.Run("Expiry date without slash is valid", func(t *testing.T) {
		payment := validPayment
		payment.ExpiryDate = "0927"
		assert.True(t, payment.Validate().IsValid())
	})

	t.Run("Short card number fails on that field only", func(t *testing.T) {
		payment := validPayment
		payment.CardNumber = "41111111"

		errors := payment.Validate()
		assert.Len(t, errors, 1)
		assert.Equal(t, "Invalid card number.", errors.For("cardNumber"))
		assert.Empty(t, errors.For("expiryDate"))
		assert.Empty(t, errors.For("cvv"))
		assert.Empty(t, errors.For("cardholderName"))
	})

	t.Run("Expiry month out of range", func(t *testing.T) {
		payment := validPayment
		payment.ExpiryDate = "13/27"

		errors := payment.Validate()
		assert.Len(t, errors, 1)
		assert.Equal(t, "Invalid expiry date.", errors.For("expiryDate"))
	})

	t.Run("Too long cvv", func(t *testing.T) {
		payment := validPayment
		payment.CVV = "12345"

		errors := payment.Validate()
		assert.Len(t, errors, 1)
		assert.Equal(t, "Invalid CVV.", errors.For("cvv"))
	})
}
