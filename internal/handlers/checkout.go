package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/services"
)

// CheckoutHandler handles checkout and order confirmation requests
type CheckoutHandler struct {
	checkout *services.CheckoutService
	store    sessions.Store
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout *services.CheckoutService, store sessions.Store) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, store: store}
}

// CheckoutForm is the customer-facing checkout payload
type CheckoutForm struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (f *CheckoutForm) validate() error {
	if strings.TrimSpace(f.Email) == "" {
		return errors.New("email is required")
	}
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(f.Street) == "" {
		return errors.New("street is required")
	}
	if strings.TrimSpace(f.City) == "" {
		return errors.New("city is required")
	}
	return nil
}

// Checkout handles POST /checkout. The cart is cleared only after the order
// and its items are persisted; any failure leaves it untouched.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var form CheckoutForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := form.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cartStore := services.NewCartStore(NewSessionCartStorage(h.store, w, r))
	cart := cartStore.Cart()

	order, err := h.checkout.Checkout(r.Context(), services.CheckoutRequest{
		CustomerEmail: form.Email,
		CustomerName:  form.Name,
		CustomerPhone: form.Phone,
		ShippingAddress: models.ShippingAddress{
			Street:     form.Street,
			City:       form.City,
			Province:   form.Province,
			PostalCode: form.PostalCode,
			Country:    form.Country,
		},
	}, cart)
	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			respondError(w, http.StatusBadRequest, "Cart is empty")
			return
		}
		log.Printf("checkout failed: %v", err)
		respondError(w, http.StatusBadGateway, "Checkout failed. Your cart has been kept.")
		return
	}

	if err := cartStore.Clear(); err != nil {
		// The order exists either way; report success
		log.Printf("failed to clear cart after checkout %s: %v", order.OrderNumber, err)
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"order_number": order.OrderNumber,
		"total":        order.TotalAmount,
	})
}

// GetOrder handles GET /orders/{orderNumber}
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.GetOrder(chi.URLParam(r, "orderNumber"))
	if err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}
