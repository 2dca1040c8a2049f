package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mystore"
)

func TestCatalogService(t *testing.T) {

	t.Run("Home page lists the seeded products", func(t *testing.T) {
		// setup
		_, router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Running Shoe")
		assert.Contains(t, response.Body.String(), "$99.99")
		assert.Contains(t, response.Body.String(), "Training Shoe")
		assert.Contains(t, response.Body.String(), "$109.99")
	})

	t.Run("Product page shows an add-to-cart form", func(t *testing.T) {
		// setup
		_, router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/product/2", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Basketball Shoe")
		assert.Contains(t, response.Body.String(), `action="/cart"`)
		assert.Contains(t, response.Body.String(), `name="price" value="129.99"`)
	})

	t.Run("Unknown product gives 404", func(t *testing.T) {
		// setup
		_, router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/product/999", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Seeding twice does not duplicate products", func(t *testing.T) {
		// setup
		ctx, _, storer := setupWithStore(t)

		products, err := storer.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, products, 4)
	})
}

func setup(t *testing.T) (context.Context, *mux.Router) {
	c, router, _ := setupWithStore(t)
	return c, router
}

func setupWithStore(t *testing.T) (context.Context, *mux.Router, mystore.Store[Product]) {
	c := context.TODO()
	storer, _, _ := mystore.New[Product](c)

	sut := NewService(storer, mylog.New("catalog"))
	router := mux.NewRouter()

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	// register again to verify seeding is idempotent
	err = sut.RegisterEndpoints(c, mux.NewRouter())
	assert.NoError(t, err)

	return c, router, storer
}
