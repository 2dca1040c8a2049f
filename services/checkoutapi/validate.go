package checkoutapi

import "regexp"

// FieldError describes a single failed field check, suitable for
// rendering beside the input it belongs to.
type FieldError struct {
	Field   string
	Message string
}

type FieldErrors []FieldError

func (fe FieldErrors) IsValid() bool {
	return len(fe) == 0
}

func (fe FieldErrors) For(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

var (
	zipCodeRegexp    = regexp.MustCompile(`^[0-9]{5}(?:-[0-9]{4})?$`)
	cardNumberRegexp = regexp.MustCompile(`^[0-9]{16}$`)
	expiryDateRegexp = regexp.MustCompile(`^(0[1-9]|1[0-2])/?([0-9]{2})$`)
	cvvRegexp        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// Validate applies all field checks at once: the result lists every
// failing field, not just the first.
func (a Address) Validate() FieldErrors {
	errors := FieldErrors{}

	if len(a.FirstName) < 2 {
		errors = append(errors, FieldError{Field: "firstName", Message: "First name must be at least 2 characters."})
	}
	if len(a.LastName) < 2 {
		errors = append(errors, FieldError{Field: "lastName", Message: "Last name must be at least 2 characters."})
	}
	if len(a.Address) < 5 {
		errors = append(errors, FieldError{Field: "address", Message: "Address must be at least 5 characters."})
	}
	if len(a.City) < 2 {
		errors = append(errors, FieldError{Field: "city", Message: "City must be at least 2 characters."})
	}
	if len(a.State) < 2 {
		errors = append(errors, FieldError{Field: "state", Message: "State must be at least 2 characters."})
	}
	if !zipCodeRegexp.MatchString(a.ZipCode) {
		errors = append(errors, FieldError{Field: "zipCode", Message: "Invalid ZIP code."})
	}
	if len(a.Country) < 2 {
		errors = append(errors, FieldError{Field: "country", Message: "Country must be at least 2 characters."})
	}

	return errors
}

func (p Payment) Validate() FieldErrors {
	errors := FieldErrors{}

	if len(p.CardholderName) < 2 {
		errors = append(errors, FieldError{Field: "cardholderName", Message: "Cardholder name must be at least 2 characters."})
	}
	if !cardNumberRegexp.MatchString(p.CardNumber) {
		errors = append(errors, FieldError{Field: "cardNumber", Message: "Invalid card number."})
	}
	if !expiryDateRegexp.MatchString(p.ExpiryDate) {
		errors = append(errors, FieldError{Field: "expiryDate", Message: "Invalid expiry date."})
	}
	if !cvvRegexp.MatchString(p.CVV) {
		errors = append(errors, FieldError{Field: "cvv", Message: "Invalid CVV."})
	}

	return errors
}
