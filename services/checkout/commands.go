package checkout

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shoestore/lib/myerrors"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/services/checkout/checkoutevents"
	"github.com/MarcGrol/shoestore/services/checkoutapi"
)

// sampleSummaryItems is shown when a checkout is started with an empty cart,
// so the summary panel never renders blank.
var sampleSummaryItems = []SummaryItem{
	{Name: "Shoe Model A", Price: 99.99, Quantity: 1},
	{Name: "Shoe Model B", Price: 129.99, Quantity: 2},
}

func (s *service) Subscribe(c context.Context) error {
	return s.publisher.CreateTopic(c, checkoutevents.TopicName)
}

func (s *service) startCheckout(c context.Context) (CheckoutSession, error) {
	checkoutUID := s.uuider.Create()

	items, err := s.summaryItems(c)
	if err != nil {
		return CheckoutSession{}, err
	}

	session := CheckoutSession{
		UID:       checkoutUID,
		CreatedAt: s.nower.Now(),
		Items:     items,
	}

	err = s.checkoutStore.Put(c, checkoutUID, session)
	if err != nil {
		return CheckoutSession{}, myerrors.NewInternalError(fmt.Errorf("error storing checkout %s: %s", checkoutUID, err))
	}

	s.logger.Log(c, checkoutUID, mylog.SeverityInfo, "Started checkout %s with %d summary items", checkoutUID, len(items))

	return session, nil
}

func (s *service) summaryItems(c context.Context) ([]SummaryItem, error) {
	lines, err := s.cartLister.CurrentLines(c)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error fetching cart for checkout: %s", err))
	}

	if len(lines) == 0 {
		return sampleSummaryItems, nil
	}

	items := make([]SummaryItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, SummaryItem{
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}

	return items, nil
}

func (s *service) getCheckout(c context.Context, checkoutUID string) (CheckoutSession, error) {
	session, exists, err := s.checkoutStore.Get(c, checkoutUID)
	if err != nil {
		return CheckoutSession{}, myerrors.NewInternalError(fmt.Errorf("error fetching checkout %s: %s", checkoutUID, err))
	}
	if !exists {
		return CheckoutSession{}, myerrors.NewNotFoundError(fmt.Errorf("checkout with uid %s not found", checkoutUID))
	}

	return session, nil
}

// saveShippingAddress stores the shipping address when it validates.
// A failed validation returns the field errors and leaves the session untouched.
func (s *service) saveShippingAddress(c context.Context, checkoutUID string, address checkoutapi.Address) (CheckoutSession, checkoutapi.FieldErrors, error) {
	fieldErrors := address.Validate()

	var session CheckoutSession
	err := s.checkoutStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		session, err = s.getCheckout(c, checkoutUID)
		if err != nil {
			return err
		}

		if !fieldErrors.IsValid() {
			return nil
		}

		now := s.nower.Now()
		session.Shipping = address
		session.ShippingSubmitted = true
		session.LastModified = &now

		err = s.checkoutStore.Put(c, checkoutUID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing checkout %s: %s", checkoutUID, err))
		}

		return s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.ShippingAddressSaved{
			CheckoutUID: checkoutUID,
		})
	})
	if err != nil {
		return CheckoutSession{}, nil, err
	}

	if fieldErrors.IsValid() {
		s.logger.Log(c, checkoutUID, mylog.SeverityInfo, "Saved shipping address of checkout %s", checkoutUID)
	}

	return session, fieldErrors, nil
}

// saveBillingAddress behaves like saveShippingAddress but refuses to run
// while the same-address toggle keeps the billing form locked.
func (s *service) saveBillingAddress(c context.Context, checkoutUID string, address checkoutapi.Address) (CheckoutSession, checkoutapi.FieldErrors, error) {
	fieldErrors := address.Validate()

	var session CheckoutSession
	err := s.checkoutStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		session, err = s.getCheckout(c, checkoutUID)
		if err != nil {
			return err
		}

		if session.SameAddress {
			return myerrors.NewInvalidInputErrorf("billing address of checkout %s is locked to the shipping address", checkoutUID)
		}

		if !fieldErrors.IsValid() {
			return nil
		}

		now := s.nower.Now()
		session.Billing = address
		session.BillingSubmitted = true
		session.LastModified = &now

		err = s.checkoutStore.Put(c, checkoutUID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing checkout %s: %s", checkoutUID, err))
		}

		return s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.BillingAddressSaved{
			CheckoutUID: checkoutUID,
		})
	})
	if err != nil {
		return CheckoutSession{}, nil, err
	}

	if fieldErrors.IsValid() {
		s.logger.Log(c, checkoutUID, mylog.SeverityInfo, "Saved billing address of checkout %s", checkoutUID)
	}

	return session, fieldErrors, nil
}

// savePaymentInfo validates the card details but never persists them:
// only the submitted flag survives.
func (s *service) savePaymentInfo(c context.Context, checkoutUID string, payment checkoutapi.Payment) (CheckoutSession, checkoutapi.FieldErrors, error) {
	fieldErrors := payment.Validate()

	var session CheckoutSession
	err := s.checkoutStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		session, err = s.getCheckout(c, checkoutUID)
		if err != nil {
			return err
		}

		if !fieldErrors.IsValid() {
			return nil
		}

		now := s.nower.Now()
		session.PaymentSubmitted = true
		session.LastModified = &now

		err = s.checkoutStore.Put(c, checkoutUID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing checkout %s: %s", checkoutUID, err))
		}

		return s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.PaymentInfoSaved{
			CheckoutUID: checkoutUID,
		})
	})
	if err != nil {
		return CheckoutSession{}, nil, err
	}

	if fieldErrors.IsValid() {
		s.logger.Log(c, checkoutUID, mylog.SeverityInfo, "Accepted payment info of checkout %s", checkoutUID)
	}

	return session, fieldErrors, nil
}

// setSameAddress flips the billing-same-as-shipping toggle. Enabling snapshots
// the shipping fields into billing, disabling clears the billing fields.
func (s *service) setSameAddress(c context.Context, checkoutUID string, enabled bool) (CheckoutSession, error) {
	var session CheckoutSession
	err := s.checkoutStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		session, err = s.getCheckout(c, checkoutUID)
		if err != nil {
			return err
		}

		now := s.nower.Now()
		session.SameAddress = enabled
		session.Billing = ApplySameAddress(session.Shipping, session.Billing, enabled)
		session.BillingSubmitted = false
		session.LastModified = &now

		err = s.checkoutStore.Put(c, checkoutUID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing checkout %s: %s", checkoutUID, err))
		}

		return nil
	})
	if err != nil {
		return CheckoutSession{}, err
	}

	s.logger.Log(c, checkoutUID, mylog.SeverityInfo, "Set same-address of checkout %s to %t", checkoutUID, enabled)

	return session, nil
}

// placeOrder completes the checkout. It does not check whether any of the
// three field sets were ever submitted, let alone validated: placing an
// order always succeeds for an existing checkout.
func (s *service) placeOrder(c context.Context, checkoutUID string) (CheckoutSession, error) {
	var session CheckoutSession
	err := s.checkoutStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		session, err = s.getCheckout(c, checkoutUID)
		if err != nil {
			return err
		}

		now := s.nower.Now()
		session.OrderPlaced = true
		session.LastModified = &now

		err = s.checkoutStore.Put(c, checkoutUID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing checkout %s: %s", checkoutUID, err))
		}

		return s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.OrderPlaced{
			CheckoutUID: checkoutUID,
			TotalAmount: session.Total(),
		})
	})
	if err != nil {
		return CheckoutSession{}, err
	}

	s.logger.Log(c, checkoutUID, mylog.SeverityInfo, "Placed order for checkout %s", checkoutUID)

	return session, nil
}
