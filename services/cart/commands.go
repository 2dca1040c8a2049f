package cart

import (
	"context"

	"github.com/MarcGrol/shoestore/lib/myerrors"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/services/cart/cartevents"
)

func (s *service) Subscribe(c context.Context) error {
	return s.publisher.CreateTopic(c, cartevents.TopicName)
}

func (s *service) currentCart(c context.Context) (Cart, error) {
	s.Lock()
	defer s.Unlock()

	lines, err := s.loadLines(c)
	if err != nil {
		return Cart{}, err
	}

	return Cart{Lines: lines}, nil
}

func (s *service) addLine(c context.Context, line Line) (Cart, error) {
	s.logger.Log(c, line.ID, mylog.SeverityInfo, "Adding product %s to cart", line.ID)

	s.Lock()
	defer s.Unlock()

	lines, err := s.loadLines(c)
	if err != nil {
		return Cart{}, err
	}

	if line.Quantity < 1 {
		line.Quantity = 1
	}

	found := false
	for i, l := range lines {
		if l.ID == line.ID {
			lines[i].Quantity += line.Quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, line)
	}

	err = s.store.Save(c, lines)
	if err != nil {
		return Cart{}, err
	}

	return Cart{Lines: lines}, nil
}

// setQuantity replaces the quantity of the line with this product-id.
// A quantity below 1 or an unknown id leaves the cart untouched.
func (s *service) setQuantity(c context.Context, productID string, newQuantity int) (Cart, error) {
	s.Lock()
	defer s.Unlock()

	return s.setQuantityLocked(c, productID, newQuantity)
}

func (s *service) setQuantityLocked(c context.Context, productID string, newQuantity int) (Cart, error) {
	lines, err := s.loadLines(c)
	if err != nil {
		return Cart{}, err
	}

	if newQuantity < 1 {
		return Cart{Lines: lines}, nil
	}

	changed := false
	for i, l := range lines {
		if l.ID == productID {
			lines[i].Quantity = newQuantity
			changed = true
			break
		}
	}
	if !changed {
		return Cart{Lines: lines}, nil
	}

	s.logger.Log(c, productID, mylog.SeverityInfo, "Set quantity of product %s to %d", productID, newQuantity)

	err = s.store.Save(c, lines)
	if err != nil {
		return Cart{}, err
	}

	return Cart{Lines: lines}, nil
}

// adjustQuantity implements the quantity stepper: one click up or down.
// Stepping below 1 is ignored, removal is the only way to drop a line.
func (s *service) adjustQuantity(c context.Context, productID string, delta int) (Cart, error) {
	s.Lock()
	defer s.Unlock()

	lines, err := s.loadLines(c)
	if err != nil {
		return Cart{}, err
	}

	for _, l := range lines {
		if l.ID == productID {
			return s.setQuantityLocked(c, productID, l.Quantity+delta)
		}
	}

	return Cart{Lines: lines}, nil
}

func (s *service) removeLine(c context.Context, productID string) (Cart, error) {
	s.Lock()
	defer s.Unlock()

	lines, err := s.loadLines(c)
	if err != nil {
		return Cart{}, err
	}

	kept := make([]Line, 0, len(lines))
	var removed *Line
	for _, l := range lines {
		if l.ID == productID {
			l := l
			removed = &l
			continue
		}
		kept = append(kept, l)
	}

	if removed == nil {
		// unknown id: not an error
		return Cart{Lines: lines}, nil
	}

	s.logger.Log(c, productID, mylog.SeverityInfo, "Removing product %s from cart", productID)

	err = s.store.Save(c, kept)
	if err != nil {
		return Cart{}, err
	}

	err = s.publisher.Publish(c, cartevents.TopicName, cartevents.CartItemRemoved{
		ProductID:   removed.ID,
		ProductName: removed.Name,
	})
	if err != nil {
		return Cart{}, myerrors.NewInternalError(err)
	}

	return Cart{Lines: kept}, nil
}

func (s *service) loadLines(c context.Context) ([]Line, error) {
	lines, reset, err := s.store.Load(c)
	if err != nil {
		return nil, err
	}

	if reset {
		s.logger.Log(c, storageKey, mylog.SeverityWarn, "Stored cart was corrupt: cleared the entry and starting empty")

		err = s.publisher.Publish(c, cartevents.TopicName, cartevents.CartStorageReset{
			Reason: "corrupt stored cart",
		})
		if err != nil {
			return nil, myerrors.NewInternalError(err)
		}
	}

	return lines, nil
}
