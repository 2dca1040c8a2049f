package checkoutapi

import (
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/shoestore/lib/myerrors"
)

// Address is one independently validated field set of the checkout:
// used for both the shipping and the billing record.
type Address struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Address   string `form:"address"`
	City      string `form:"city"`
	State     string `form:"state"`
	ZipCode   string `form:"zipCode"`
	Country   string `form:"country"`
}

// Payment is transient: validated and acknowledged, never persisted.
type Payment struct {
	CardholderName string `form:"cardholderName"`
	CardNumber     string `form:"cardNumber"`
	ExpiryDate     string `form:"expiryDate"`
	CVV            string `form:"cvv"`
}

func NewAddressFromRequest(r *http.Request) (Address, error) {
	err := r.ParseForm()
	if err != nil {
		return Address{}, myerrors.NewInvalidInputError(err)
	}
	return NewAddressFromValues(r.Form)
}

func NewAddressFromValues(values url.Values) (Address, error) {
	address := Address{}
	err := formcodec.NewDecoder().Decode(&address, values)
	if err != nil {
		return address, fmt.Errorf("error decoding form: %s", err)
	}

	return address, nil
}

func (a Address) ToForm() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(a)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}

func NewPaymentFromRequest(r *http.Request) (Payment, error) {
	err := r.ParseForm()
	if err != nil {
		return Payment{}, myerrors.NewInvalidInputError(err)
	}
	return NewPaymentFromValues(r.Form)
}

func NewPaymentFromValues(values url.Values) (Payment, error) {
	payment := Payment{}
	err := formcodec.NewDecoder().Decode(&payment, values)
	if err != nil {
		return payment, fmt.Errorf("error decoding form: %s", err)
	}

	return payment, nil
}
