package cart

import "fmt"

// ShippingCost is a flat fee, charged regardless of cart size.
const ShippingCost = 10

// Line is one product entry with quantity in the shopping cart.
// The json tags define the persisted representation.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Quantity int     `json:"quantity"`
}

func (l Line) TotalPrice() float64 {
	return l.Price * float64(l.Quantity)
}

func (l Line) DisplayPrice() string {
	return formatAmount(l.Price)
}

func (l Line) DisplayTotalPrice() string {
	return formatAmount(l.TotalPrice())
}

// Cart is derived state: everything below is recomputed from the lines.
type Cart struct {
	Lines []Line
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Subtotal() float64 {
	var subtotal float64
	for _, l := range c.Lines {
		subtotal += l.TotalPrice()
	}
	return subtotal
}

func (c Cart) Total() float64 {
	return c.Subtotal() + ShippingCost
}

func (c Cart) DisplaySubtotal() string {
	return formatAmount(c.Subtotal())
}

func (c Cart) DisplayShippingCost() string {
	return formatAmount(ShippingCost)
}

func (c Cart) DisplayTotal() string {
	return formatAmount(c.Total())
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
