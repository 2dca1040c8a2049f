// Package notification turns domain events into user-facing toast
// messages. The messages are logged only, they are not persisted.
package notification

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shoestore/lib/myhttp"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mypubsub"
	"github.com/MarcGrol/shoestore/services/cart/cartevents"
	"github.com/MarcGrol/shoestore/services/checkout/checkoutevents"
)

type service struct {
	pubsub mypubsub.PubSub
	logger mylog.Logger
}

func newService(pubsub mypubsub.PubSub, logger mylog.Logger) *service {
	return &service{
		pubsub: pubsub,
		logger: logger,
	}
}

func (s *service) Subscribe(c context.Context) error {
	for _, topic := range []string{cartevents.TopicName, checkoutevents.TopicName} {
		err := s.pubsub.CreateTopic(c, topic)
		if err != nil {
			return fmt.Errorf("error creating topic %s: %s", topic, err)
		}

		err = s.pubsub.Subscribe(c, topic, myhttp.GuessHostnameWithScheme()+"/api/notification/"+topic+"/event")
		if err != nil {
			return fmt.Errorf("error subscribing to topic %s: %s", topic, err)
		}
	}

	return nil
}

func (s *service) OnCartItemRemoved(c context.Context, topic string, event cartevents.CartItemRemoved) error {
	s.toast(c, event.ProductID, "Item removed from cart")
	return nil
}

func (s *service) OnCartStorageReset(c context.Context, topic string, event cartevents.CartStorageReset) error {
	s.toast(c, topic, "Your cart could not be restored and was emptied")
	return nil
}

func (s *service) OnShippingAddressSaved(c context.Context, topic string, event checkoutevents.ShippingAddressSaved) error {
	s.toast(c, event.CheckoutUID, "Shipping address saved!")
	return nil
}

func (s *service) OnBillingAddressSaved(c context.Context, topic string, event checkoutevents.BillingAddressSaved) error {
	s.toast(c, event.CheckoutUID, "Billing address saved!")
	return nil
}

func (s *service) OnPaymentInfoSaved(c context.Context, topic string, event checkoutevents.PaymentInfoSaved) error {
	s.toast(c, event.CheckoutUID, "Payment information saved!")
	return nil
}

func (s *service) OnOrderPlaced(c context.Context, topic string, event checkoutevents.OrderPlaced) error {
	s.toast(c, event.CheckoutUID, fmt.Sprintf("Order placed successfully! Total $%.2f", event.TotalAmount))
	return nil
}

func (s *service) toast(c context.Context, traceLabel string, message string) {
	s.logger.Log(c, traceLabel, mylog.SeverityInfo, "Toast: %s", message)
}
