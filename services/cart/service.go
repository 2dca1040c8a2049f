package cart

import (
	"sync"

	"github.com/MarcGrol/shoestore/lib/mykvstore"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mypublisher"
)

type service struct {
	// Serializes read-modify-write cycles the way the original's
	// single-threaded event loop did.
	sync.Mutex
	store     *cartStore
	publisher mypublisher.Publisher
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(kv mykvstore.Store, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		store:     newCartStore(kv),
		publisher: pub,
		logger:    logger,
	}
}
