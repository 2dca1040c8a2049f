package checkoutevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MarcGrol/shoestore/lib/myerrors"
	"github.com/MarcGrol/shoestore/lib/myevents"
)

const (
	TopicName         = "checkout"
	shippingSavedName = TopicName + ".shipping.saved"
	billingSavedName  = TopicName + ".billing.saved"
	paymentSavedName  = TopicName + ".payment.saved"
	orderPlacedName   = TopicName + ".order.placed"
)

type CheckoutEventService interface {
	Subscribe(c context.Context) error
	OnShippingAddressSaved(c context.Context, topic string, event ShippingAddressSaved) error
	OnBillingAddressSaved(c context.Context, topic string, event BillingAddressSaved) error
	OnPaymentInfoSaved(c context.Context, topic string, event PaymentInfoSaved) error
	OnOrderPlaced(c context.Context, topic string, event OrderPlaced) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CheckoutEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case shippingSavedName:
		{
			event := ShippingAddressSaved{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnShippingAddressSaved(c, envelope.Topic, event)
		}
	case billingSavedName:
		{
			event := BillingAddressSaved{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnBillingAddressSaved(c, envelope.Topic, event)
		}
	case paymentSavedName:
		{
			event := PaymentInfoSaved{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnPaymentInfoSaved(c, envelope.Topic, event)
		}
	case orderPlacedName:
		{
			event := OrderPlaced{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderPlaced(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("%s", envelope.EventTypeName))
	}
}

type ShippingAddressSaved struct {
	CheckoutUID string
}

func (e ShippingAddressSaved) GetEventTypeName() string {
	return shippingSavedName
}

func (e ShippingAddressSaved) GetAggregateName() string {
	return e.CheckoutUID
}

type BillingAddressSaved struct {
	CheckoutUID string
}

func (e BillingAddressSaved) GetEventTypeName() string {
	return billingSavedName
}

func (e BillingAddressSaved) GetAggregateName() string {
	return e.CheckoutUID
}

type PaymentInfoSaved struct {
	CheckoutUID string
}

func (e PaymentInfoSaved) GetEventTypeName() string {
	return paymentSavedName
}

func (e PaymentInfoSaved) GetAggregateName() string {
	return e.CheckoutUID
}

type OrderPlaced struct {
	CheckoutUID string
	TotalAmount float64
}

func (e OrderPlaced) GetEventTypeName() string {
	return orderPlacedName
}

func (e OrderPlaced) GetAggregateName() string {
	return e.CheckoutUID
}
