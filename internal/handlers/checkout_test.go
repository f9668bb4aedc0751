package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/services"
)

// stubOrderRepo records created orders and can be told to fail
type stubOrderRepo struct {
	createErr error
	itemsErr  error

	created *models.Order
	items   []*models.OrderItem
}

func (s *stubOrderRepo) Create(req *models.OrderCreateRequest) (*models.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &models.Order{
		ID:            "order-1",
		OrderNumber:   req.OrderNumber,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		TotalAmount:   req.TotalAmount,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	}
	return s.created, nil
}

func (s *stubOrderRepo) CreateItems(orderID string, items []*models.OrderItem) error {
	if s.itemsErr != nil {
		return s.itemsErr
	}
	s.items = items
	return nil
}

func (s *stubOrderRepo) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	if s.created == nil || s.created.OrderNumber != orderNumber {
		return nil, models.ErrOrderNotFound
	}
	return s.created, nil
}

func newCheckoutRouter(orders *stubOrderRepo) chi.Router {
	store := sessions.NewCookieStore([]byte("test-secret"))
	cartHandler := NewCartHandler(testCatalog(), store)
	checkoutHandler := NewCheckoutHandler(services.NewCheckoutService(orders, nil), store)

	r := chi.NewRouter()
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)
		r.Post("/items", cartHandler.AddItem)
	})
	r.Post("/checkout", checkoutHandler.Checkout)
	r.Get("/orders/{orderNumber}", checkoutHandler.GetOrder)
	return r
}

func checkoutForm() CheckoutForm {
	return CheckoutForm{
		Email:      "thabo@example.com",
		Name:       "Thabo Mokoena",
		Phone:      "+26612345678",
		Street:     "12 Kingsway",
		City:       "Maseru",
		Province:   "Maseru",
		PostalCode: "100",
		Country:    "Lesotho",
	}
}

func seedCart(t *testing.T, router http.Handler) []*http.Cookie {
	t.Helper()

	rec, cookies := doRequest(t, router, http.MethodPost, "/cart/items",
		AddItemRequest{Type: models.ItemTypeProduct, ProductID: "p1", Quantity: 2, Size: "M"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, cookies = doRequest(t, router, http.MethodPost, "/cart/items",
		AddItemRequest{Type: models.ItemTypeTicket, TicketTypeID: "tt1", Quantity: 1}, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	return cookies
}

func TestCheckoutHandler_Checkout_Success(t *testing.T) {
	orders := &stubOrderRepo{}
	router := newCheckoutRouter(orders)
	cookies := seedCart(t, router)

	rec, cookies := doRequest(t, router, http.MethodPost, "/checkout", checkoutForm(), cookies)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		OrderNumber string `json:"order_number"`
		Total       int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.OrderNumber)
	assert.Equal(t, 115000, resp.Total)

	require.NotNil(t, orders.created)
	assert.Equal(t, models.OrderPending, orders.created.Status)
	assert.Equal(t, models.PaymentCompleted, orders.created.PaymentStatus)
	require.Len(t, orders.items, 2)
	assert.Equal(t, "Mokorotlo Heritage Tee", orders.items[0].ItemName)
	assert.Equal(t, 90000, orders.items[0].TotalPrice)
	assert.Equal(t, models.ItemTypeTicket, orders.items[1].ItemType)

	// The session cart is cleared on success
	rec, _ = doRequest(t, router, http.MethodGet, "/cart", nil, cookies)
	assert.Empty(t, decodeCart(t, rec).Items)
}

func TestCheckoutHandler_Checkout_EmptyCart(t *testing.T) {
	orders := &stubOrderRepo{}
	router := newCheckoutRouter(orders)

	rec, _ := doRequest(t, router, http.MethodPost, "/checkout", checkoutForm(), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, orders.created)
}

func TestCheckoutHandler_Checkout_MissingEmail(t *testing.T) {
	orders := &stubOrderRepo{}
	router := newCheckoutRouter(orders)
	cookies := seedCart(t, router)

	form := checkoutForm()
	form.Email = "  "
	rec, _ := doRequest(t, router, http.MethodPost, "/checkout", form, cookies)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, orders.created)
}

func TestCheckoutHandler_Checkout_OrderFailureKeepsCart(t *testing.T) {
	orders := &stubOrderRepo{createErr: errors.New("insert failed")}
	router := newCheckoutRouter(orders)
	cookies := seedCart(t, router)

	rec, cookies := doRequest(t, router, http.MethodPost, "/checkout", checkoutForm(), cookies)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// The session cart survives the failed attempt
	rec, _ = doRequest(t, router, http.MethodGet, "/cart", nil, cookies)
	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 115000, resp.Total)
}

func TestCheckoutHandler_GetOrder(t *testing.T) {
	orders := &stubOrderRepo{}
	router := newCheckoutRouter(orders)
	cookies := seedCart(t, router)

	rec, _ := doRequest(t, router, http.MethodPost, "/checkout", checkoutForm(), cookies)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		OrderNumber string `json:"order_number"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec, _ = doRequest(t, router, http.MethodGet, "/orders/"+resp.OrderNumber, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, resp.OrderNumber, order.OrderNumber)
	assert.Equal(t, 115000, order.TotalAmount)
}

func TestCheckoutHandler_GetOrder_NotFound(t *testing.T) {
	router := newCheckoutRouter(&stubOrderRepo{})

	rec, _ := doRequest(t, router, http.MethodGet, "/orders/SF-000-MISSING00", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
