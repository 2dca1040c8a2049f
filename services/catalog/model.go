package catalog

import "fmt"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

func (p Product) DisplayPrice() string {
	return fmt.Sprintf("$%.2f", p.Price)
}

type Testimonial struct {
	Name    string
	Rating  int
	Comment string
}

func (t Testimonial) Stars() string {
	stars := ""
	for i := 0; i < t.Rating; i++ {
		stars += "⭐"
	}
	return stars
}
