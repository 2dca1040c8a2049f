package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shoestore/lib/myevents"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mypubsub"
	"github.com/MarcGrol/shoestore/lib/mytime"
	"github.com/MarcGrol/shoestore/services/cart/cartevents"
	"github.com/MarcGrol/shoestore/services/checkout/checkoutevents"
)

func TestNotificationService(t *testing.T) {

	t.Run("Handle cart event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/notification/cart/event", strings.NewReader(createPubsubMessage(t,
			cartevents.TopicName, cartevents.CartItemRemoved{
				ProductID:   "1",
				ProductName: "Running Shoe",
			})))
		assert.NoError(t, err)
		request.Host = "localhost:8888"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Handle checkout event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/notification/checkout/event", strings.NewReader(createPubsubMessage(t,
			checkoutevents.TopicName, checkoutevents.OrderPlaced{
				CheckoutUID: "123",
				TotalAmount: 369.97,
			})))
		assert.NoError(t, err)
		request.Host = "localhost:8888"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Unknown event type is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router := setup(t, ctrl)

		// given
		envelope := myevents.EventEnvelope{
			UID:           "123",
			CreatedAt:     mytime.ExampleTime,
			Topic:         "cart",
			AggregateUID:  "1",
			EventTypeName: "cart.exploded",
		}
		envelopeBytes, err := json.Marshal(envelope)
		assert.NoError(t, err)
		reqBytes, err := json.Marshal(myevents.PushRequest{
			Message:      myevents.PushMessage{Data: envelopeBytes},
			Subscription: "cart",
		})
		assert.NoError(t, err)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/notification/cart/event", strings.NewReader(string(reqBytes)))
		assert.NoError(t, err)
		request.Host = "localhost:8888"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 501, response.Code)
	})
}

func createPubsubMessage(t *testing.T, topic string, event myevents.Event) string {
	eventBytes, err := json.Marshal(event)
	assert.NoError(t, err)

	envelope := myevents.EventEnvelope{
		UID:           "123",
		CreatedAt:     mytime.ExampleTime,
		Topic:         topic,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(eventBytes),
	}
	envelopeBytes, err := json.Marshal(envelope)
	assert.NoError(t, err)

	reqBytes, err := json.Marshal(myevents.PushRequest{
		Message: myevents.PushMessage{
			Data: envelopeBytes,
		},
		Subscription: topic,
	})
	assert.NoError(t, err)

	return string(reqBytes)
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router) {
	c := context.TODO()
	subscriber := mypubsub.NewMockPubSub(ctrl)

	sut := NewService(subscriber, mylog.New("notification"))
	router := mux.NewRouter()

	// These are called by the following call to RegisterEndpoints()
	subscriber.EXPECT().CreateTopic(c, cartevents.TopicName).Return(nil)
	subscriber.EXPECT().Subscribe(c, cartevents.TopicName, "http://localhost:8080/api/notification/cart/event").Return(nil)
	subscriber.EXPECT().CreateTopic(c, checkoutevents.TopicName).Return(nil)
	subscriber.EXPECT().Subscribe(c, checkoutevents.TopicName, "http://localhost:8080/api/notification/checkout/event").Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router
}
