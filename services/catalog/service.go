package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/MarcGrol/shoestore/lib/myerrors"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mystore"
)

var sampleProducts = []Product{
	{
		ID:          "1",
		Name:        "Running Shoe",
		Description: "Lightweight and responsive, built for your daily miles.",
		Price:       99.99,
		ImageURL:    "https://images.unsplash.com/photo-1549298713-1aca92f03c4e?auto=format&fit=crop&w=3180&q=80",
	},
	{
		ID:          "2",
		Name:        "Basketball Shoe",
		Description: "High-top support and grip for the court.",
		Price:       129.99,
		ImageURL:    "https://images.unsplash.com/photo-1515955656352-a1b9c5cf27ea?auto=format&fit=crop&w=3300&q=80",
	},
	{
		ID:          "3",
		Name:        "Casual Shoe",
		Description: "Everyday comfort that goes with everything.",
		Price:       79.99,
		ImageURL:    "https://images.unsplash.com/photo-1606107557195-0a29a5b4b4aa?auto=format&fit=crop&w=3264&q=80",
	},
	{
		ID:          "4",
		Name:        "Training Shoe",
		Description: "Stable and versatile, from the gym floor to the track.",
		Price:       109.99,
		ImageURL:    "https://images.unsplash.com/photo-1588361403511-5fef9c3c6cb5?auto=format&fit=crop&w=3000&q=80",
	},
}

var sampleTestimonials = []Testimonial{
	{Name: "John Doe", Rating: 5, Comment: "Great shoes! Very comfortable and stylish."},
	{Name: "Jane Smith", Rating: 4, Comment: "Good quality and fast shipping."},
}

type service struct {
	productStore mystore.Store[Product]
	logger       mylog.Logger
}

func newService(productStore mystore.Store[Product], logger mylog.Logger) *service {
	return &service{
		productStore: productStore,
		logger:       logger,
	}
}

// seed fills an empty product store with the sample catalog.
func (s *service) seed(c context.Context) error {
	existing, err := s.productStore.List(c)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error listing products: %s", err))
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range sampleProducts {
		err = s.productStore.Put(c, p.ID, p)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing product %s: %s", p.ID, err))
		}
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Seeded catalog with %d products", len(sampleProducts))

	return nil
}

func (s *service) listProducts(c context.Context) ([]Product, error) {
	products, err := s.productStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error listing products: %s", err))
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	return products, nil
}

func (s *service) getProduct(c context.Context, productID string) (Product, error) {
	product, exists, err := s.productStore.Get(c, productID)
	if err != nil {
		return Product{}, myerrors.NewInternalError(fmt.Errorf("error fetching product %s: %s", productID, err))
	}
	if !exists {
		return Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with id %s not found", productID))
	}

	return product, nil
}
