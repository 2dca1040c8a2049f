package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"

	"github.com/MarcGrol/shoestore/lib/mykvstore"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mypublisher"
	"github.com/MarcGrol/shoestore/lib/mypubsub"
	"github.com/MarcGrol/shoestore/lib/myqueue"
	"github.com/MarcGrol/shoestore/lib/mystore"
	"github.com/MarcGrol/shoestore/lib/mytime"
	"github.com/MarcGrol/shoestore/lib/myuuid"
	"github.com/MarcGrol/shoestore/services/cart"
	"github.com/MarcGrol/shoestore/services/catalog"
	"github.com/MarcGrol/shoestore/services/checkout"
	"github.com/MarcGrol/shoestore/services/notification"
	"github.com/MarcGrol/shoestore/services/warmup"
)

type config struct {
	Port string `default:"8080"`
}

func main() {
	c := context.Background()

	cfg := config{}
	err := envconfig.Process("", &cfg)
	if err != nil {
		log.Fatalf("Error processing environment: %s", err)
	}

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	productStore, productStoreCleanup, err := mystore.New[catalog.Product](c)
	if err != nil {
		log.Fatalf("Error creating product store: %s", err)
	}
	defer productStoreCleanup()

	catalogService := catalog.NewService(productStore, mylog.New("catalog"))
	err = catalogService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalog service: %s", err)
	}

	kvStore, kvStoreCleanup, err := mykvstore.New(c)
	if err != nil {
		log.Fatalf("Error creating key-value store: %s", err)
	}
	defer kvStoreCleanup()

	cartService := cart.NewService(kvStore, mylog.New("cart"), publisher)
	err = cartService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering cart service: %s", err)
	}

	checkoutStore, checkoutStoreCleanup, err := mystore.New[checkout.CheckoutSession](c)
	if err != nil {
		log.Fatalf("Error creating checkout store: %s", err)
	}
	defer checkoutStoreCleanup()

	checkoutService := checkout.NewService(checkoutStore, cartService, nower, uuider, mylog.New("checkout"), publisher)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout service: %s", err)
	}

	notificationService := notification.NewService(pubsub, mylog.New("notification"))
	err = notificationService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering notification service: %s", err)
	}

	warmupService := warmup.NewService(productStore)
	warmupService.RegisterEndpoints(c, router)

	startWebServerBlocking(router, cfg.Port)
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
