// Package warmup answers App Engine warmup requests by touching the
// product catalog, so a fresh instance has its datastore connection
// established before real traffic arrives.
package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shoestore/lib/mycontext"
	"github.com/MarcGrol/shoestore/lib/myhttp"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mystore"
	"github.com/MarcGrol/shoestore/services/catalog"
)

type webService struct {
	logger       mylog.Logger
	productStore mystore.Store[catalog.Product]
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(productStore mystore.Store[catalog.Product]) *webService {
	return &webService{
		logger:       mylog.New("warmup"),
		productStore: productStore,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		products, err := s.productStore.List(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.logger.Log(c, "", mylog.SeverityInfo, "Warmed up with %d products", len(products))

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "warmed up",
		})
	}
}
