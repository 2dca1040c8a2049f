package checkout

import (
	"github.com/MarcGrol/shoestore/services/checkoutapi"
)

// ApplySameAddress returns the billing address that results from flipping
// the "billing same as shipping" toggle. Enabling copies every shipping
// field, disabling clears every billing field. The copy is a snapshot:
// later edits to the shipping address do not flow into billing.
func ApplySameAddress(shipping checkoutapi.Address, billing checkoutapi.Address, enabled bool) checkoutapi.Address {
	if enabled {
		return shipping
	}
	return checkoutapi.Address{}
}
