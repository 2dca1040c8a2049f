package cart

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shoestore/lib/mycontext"
	"github.com/MarcGrol/shoestore/lib/myerrors"
	"github.com/MarcGrol/shoestore/lib/myhttp"
	"github.com/MarcGrol/shoestore/lib/mykvstore"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mypublisher"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(kv mykvstore.Store, logger mylog.Logger, pub mypublisher.Publisher) *webService {
	return &webService{
		service: newService(kv, logger, pub),
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Endpoints that compose the userinterface
	router.HandleFunc("/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/cart", s.addToCartPage()).Methods("POST")
	router.HandleFunc("/cart/{productID}/quantity/increment", s.adjustQuantityPage(+1)).Methods("POST")
	router.HandleFunc("/cart/{productID}/quantity/decrement", s.adjustQuantityPage(-1)).Methods("POST")
	router.HandleFunc("/cart/{productID}/remove", s.removeFromCartPage()).Methods("POST")

	return s.service.Subscribe(c)
}

// CurrentLines exposes the cart content to sibling services
func (s *webService) CurrentLines(c context.Context) ([]Line, error) {
	cart, err := s.service.currentCart(c)
	if err != nil {
		return nil, err
	}
	return cart.Lines, nil
}

//go:embed templates
var templateFolder embed.FS
var (
	cartPageTemplate *template.Template
)

func init() {
	cartPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/cart.html"))
}

type cartPageInfo struct {
	Cart  Cart
	Flash string
}

type addToCartForm struct {
	ID       string  `form:"id"`
	Name     string  `form:"name"`
	Price    float64 `form:"price"`
	ImageURL string  `form:"imageUrl"`
	Quantity int     `form:"quantity"`
}

func (s *webService) cartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cart, err := s.service.currentCart(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.renderCartPage(c, w, errorWriter, cart, r.URL.Query().Get("flash"))
	}
}

func (s *webService) addToCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		form := addToCartForm{}
		err = formcodec.NewDecoder().Decode(&form, r.Form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(err))
			return
		}
		if form.ID == "" {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputErrorf("missing product id"))
			return
		}

		_, err = s.service.addLine(c, Line(form))
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		redirectToCart(w, r, fmt.Sprintf("%s added to your cart", form.Name))
	}
}

func (s *webService) adjustQuantityPage(delta int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["productID"]

		cart, err := s.service.adjustQuantity(c, productID, delta)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.renderCartPage(c, w, errorWriter, cart, "")
	}
}

func (s *webService) removeFromCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["productID"]

		cart, err := s.service.removeLine(c, productID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.renderCartPage(c, w, errorWriter, cart, "Item removed from cart")
	}
}

func (s *webService) renderCartPage(c context.Context, w http.ResponseWriter, errorWriter myhttp.ResponseWriter, cart Cart, flash string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := cartPageTemplate.Execute(w, cartPageInfo{
		Cart:  cart,
		Flash: flash,
	})
	if err != nil {
		errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
		return
	}
}

func redirectToCart(w http.ResponseWriter, r *http.Request, flash string) {
	url := fmt.Sprintf("%s/cart", myhttp.HostnameWithScheme(r))
	if flash != "" {
		url += "?flash=" + template.URLQueryEscaper(flash)
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
