package checkout

import (
	"context"

	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mypublisher"
	"github.com/MarcGrol/shoestore/lib/mystore"
	"github.com/MarcGrol/shoestore/lib/mytime"
	"github.com/MarcGrol/shoestore/lib/myuuid"
	"github.com/MarcGrol/shoestore/services/cart"
)

// CartLister provides the current content of the shopping cart so a new
// checkout can snapshot it into its order summary.
//
//go:generate mockgen -source=service.go -package checkout -destination cartlister_mock.go CartLister
type CartLister interface {
	CurrentLines(c context.Context) ([]cart.Line, error)
}

type service struct {
	checkoutStore mystore.Store[CheckoutSession]
	cartLister    CartLister
	nower         mytime.Nower
	uuider        myuuid.UUIDer
	logger        mylog.Logger
	publisher     mypublisher.Publisher
}

func newService(checkoutStore mystore.Store[CheckoutSession], cartLister CartLister, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, publisher mypublisher.Publisher) *service {
	return &service{
		checkoutStore: checkoutStore,
		cartLister:    cartLister,
		nower:         nower,
		uuider:        uuider,
		logger:        logger,
		publisher:     publisher,
	}
}
