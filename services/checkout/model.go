package checkout

import (
	"fmt"
	"time"

	"github.com/MarcGrol/shoestore/services/cart"
	"github.com/MarcGrol/shoestore/services/checkoutapi"
)

// SummaryItem is a line of the order summary, snapshotted from the cart
// when the checkout is started.
type SummaryItem struct {
	Name     string
	Price    float64
	Quantity int
}

func (i SummaryItem) TotalPrice() float64 {
	return i.Price * float64(i.Quantity)
}

func (i SummaryItem) DisplayTotalPrice() string {
	return formatAmount(i.TotalPrice())
}

// CheckoutSession holds the three independently validated field sets for
// the duration of one checkout. Payment details themselves are transient
// and deliberately absent: only the fact that they were submitted is kept.
type CheckoutSession struct {
	UID               string
	CreatedAt         time.Time
	LastModified      *time.Time
	Items             []SummaryItem
	Shipping          checkoutapi.Address
	ShippingSubmitted bool
	Billing           checkoutapi.Address
	BillingSubmitted  bool
	SameAddress       bool
	PaymentSubmitted  bool
	OrderPlaced       bool
}

func (s CheckoutSession) Subtotal() float64 {
	var subtotal float64
	for _, i := range s.Items {
		subtotal += i.TotalPrice()
	}
	return subtotal
}

func (s CheckoutSession) Total() float64 {
	return s.Subtotal() + cart.ShippingCost
}

func (s CheckoutSession) DisplaySubtotal() string {
	return formatAmount(s.Subtotal())
}

func (s CheckoutSession) DisplayShippingCost() string {
	return formatAmount(cart.ShippingCost)
}

func (s CheckoutSession) DisplayTotal() string {
	return formatAmount(s.Total())
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
