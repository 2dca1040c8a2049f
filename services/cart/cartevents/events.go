package cartevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MarcGrol/shoestore/lib/myerrors"
	"github.com/MarcGrol/shoestore/lib/myevents"
)

const (
	TopicName        = "cart"
	itemRemovedName  = TopicName + ".item.removed"
	storageResetName = TopicName + ".storage.reset"
)

type CartEventService interface {
	Subscribe(c context.Context) error
	OnCartItemRemoved(c context.Context, topic string, event CartItemRemoved) error
	OnCartStorageReset(c context.Context, topic string, event CartStorageReset) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CartEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case itemRemovedName:
		{
			event := CartItemRemoved{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnCartItemRemoved(c, envelope.Topic, event)
		}
	case storageResetName:
		{
			event := CartStorageReset{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnCartStorageReset(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("%s", envelope.EventTypeName))
	}
}

type CartItemRemoved struct {
	ProductID   string
	ProductName string
}

func (e CartItemRemoved) GetEventTypeName() string {
	return itemRemovedName
}

func (e CartItemRemoved) GetAggregateName() string {
	return e.ProductID
}

type CartStorageReset struct {
	Reason string
}

func (e CartStorageReset) GetEventTypeName() string {
	return storageResetName
}

func (e CartStorageReset) GetAggregateName() string {
	return TopicName
}
