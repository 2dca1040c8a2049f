package checkout

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shoestore/lib/mycontext"
	"github.com/MarcGrol/shoestore/lib/myerrors"
	"github.com/MarcGrol/shoestore/lib/myhttp"
	"github.com/MarcGrol/shoestore/lib/mylog"
	"github.com/MarcGrol/shoestore/lib/mypublisher"
	"github.com/MarcGrol/shoestore/lib/mystore"
	"github.com/MarcGrol/shoestore/lib/mytime"
	"github.com/MarcGrol/shoestore/lib/myuuid"
	"github.com/MarcGrol/shoestore/services/checkoutapi"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(checkoutStore mystore.Store[CheckoutSession], cartLister CartLister, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *webService {
	return &webService{
		service: newService(checkoutStore, cartLister, nower, uuider, logger, pub),
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Endpoints that compose the userinterface
	router.HandleFunc("/checkout", s.startCheckoutPage()).Methods("POST")
	router.HandleFunc("/checkout/{checkoutUID}", s.checkoutPage()).Methods("GET")
	router.HandleFunc("/checkout/{checkoutUID}/shipping", s.shippingPage()).Methods("POST")
	router.HandleFunc("/checkout/{checkoutUID}/billing", s.billingPage()).Methods("POST")
	router.HandleFunc("/checkout/{checkoutUID}/sameaddress", s.sameAddressPage()).Methods("POST")
	router.HandleFunc("/checkout/{checkoutUID}/payment", s.paymentPage()).Methods("POST")
	router.HandleFunc("/checkout/{checkoutUID}/order", s.placeOrderPage()).Methods("POST")

	return s.service.Subscribe(c)
}

//go:embed templates
var templateFolder embed.FS
var (
	checkoutPageTemplate *template.Template
)

func init() {
	checkoutPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/checkout.html"))
}

type checkoutPageInfo struct {
	Session        CheckoutSession
	Payment        checkoutapi.Payment
	ShippingErrors checkoutapi.FieldErrors
	BillingErrors  checkoutapi.FieldErrors
	PaymentErrors  checkoutapi.FieldErrors
	Flash          string
}

func (s *webService) startCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, err := s.service.startCheckout(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		redirectToCheckout(w, r, session.UID, "")
	}
}

func (s *webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		checkoutUID := mux.Vars(r)["checkoutUID"]

		session, err := s.service.getCheckout(c, checkoutUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.renderCheckoutPage(c, w, errorWriter, checkoutPageInfo{
			Session: session,
			Flash:   r.URL.Query().Get("flash"),
		})
	}
}

func (s *webService) shippingPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		checkoutUID := mux.Vars(r)["checkoutUID"]

		address, err := checkoutapi.NewAddressFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		session, fieldErrors, err := s.service.saveShippingAddress(c, checkoutUID, address)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if !fieldErrors.IsValid() {
			// re-render with the entered values and a message per invalid field
			session.Shipping = address
			s.renderCheckoutPage(c, w, errorWriter, checkoutPageInfo{
				Session:        session,
				ShippingErrors: fieldErrors,
			})
			return
		}

		redirectToCheckout(w, r, checkoutUID, "Shipping address saved!")
	}
}

func (s *webService) billingPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		checkoutUID := mux.Vars(r)["checkoutUID"]

		address, err := checkoutapi.NewAddressFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		session, fieldErrors, err := s.service.saveBillingAddress(c, checkoutUID, address)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if !fieldErrors.IsValid() {
			session.Billing = address
			s.renderCheckoutPage(c, w, errorWriter, checkoutPageInfo{
				Session:       session,
				BillingErrors: fieldErrors,
			})
			return
		}

		redirectToCheckout(w, r, checkoutUID, "Billing address saved!")
	}
}

func (s *webService) sameAddressPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		checkoutUID := mux.Vars(r)["checkoutUID"]

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}
		enabled := r.Form.Get("enabled") == "on" || r.Form.Get("enabled") == "true"

		_, err = s.service.setSameAddress(c, checkoutUID, enabled)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		redirectToCheckout(w, r, checkoutUID, "")
	}
}

func (s *webService) paymentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		checkoutUID := mux.Vars(r)["checkoutUID"]

		payment, err := checkoutapi.NewPaymentFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		session, fieldErrors, err := s.service.savePaymentInfo(c, checkoutUID, payment)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if !fieldErrors.IsValid() {
			s.renderCheckoutPage(c, w, errorWriter, checkoutPageInfo{
				Session:       session,
				Payment:       payment,
				PaymentErrors: fieldErrors,
			})
			return
		}

		redirectToCheckout(w, r, checkoutUID, "Payment information saved!")
	}
}

func (s *webService) placeOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		checkoutUID := mux.Vars(r)["checkoutUID"]

		_, err := s.service.placeOrder(c, checkoutUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		redirectToCheckout(w, r, checkoutUID, "Order placed successfully!")
	}
}

func (s *webService) renderCheckoutPage(c context.Context, w http.ResponseWriter, errorWriter myhttp.ResponseWriter, pageInfo checkoutPageInfo) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := checkoutPageTemplate.Execute(w, pageInfo)
	if err != nil {
		errorWriter.WriteError(c, w, 3, myerrors.NewInternalError(err))
		return
	}
}

func redirectToCheckout(w http.ResponseWriter, r *http.Request, checkoutUID string, flash string) {
	url := fmt.Sprintf("%s/checkout/%s", myhttp.HostnameWithScheme(r), checkoutUID)
	if flash != "" {
		url += "?flash=" + template.URLQueryEscaper(flash)
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
