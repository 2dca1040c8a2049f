package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shoestore/lib/mykvstore"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mypublisher"
)

func TestSetQuantity(t *testing.T) {
	c := context.TODO()

	tests := []struct {
		name         string
		productID    string
		newQuantity  int
		wantQuantity int
	}{
		{name: "Positive quantity is applied", productID: "1", newQuantity: 5, wantQuantity: 5},
		{name: "Zero is ignored", productID: "1", newQuantity: 0, wantQuantity: 2},
		{name: "Negative is ignored", productID: "1", newQuantity: -1, wantQuantity: 2},
		{name: "Unknown id changes nothing", productID: "999", newQuantity: 5, wantQuantity: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sut := newService(newKV(t), mylog.New("cart"), mypublisher.NewMockPublisher(ctrl))
			_, err := sut.addLine(c, Line{ID: "1", Name: "Running Shoe", Price: 99.99, Quantity: 2})
			assert.NoError(t, err)

			cart, err := sut.setQuantity(c, tc.productID, tc.newQuantity)
			assert.NoError(t, err)

			assert.Len(t, cart.Lines, 1)
			assert.Equal(t, tc.wantQuantity, cart.Lines[0].Quantity)
			assert.Equal(t, 99.99*float64(tc.wantQuantity), cart.Subtotal())
		})
	}
}

func newKV(t *testing.T) mykvstore.Store {
	kv, _, err := mykvstore.New(context.TODO())
	assert.NoError(t, err)
	return kv
}
