package services

import (
	"context"
	"fmt"
	"log"

	"sesotho-storefront/internal/models"
)

// CheckoutRequest carries the customer details collected on the checkout form
type CheckoutRequest struct {
	CustomerEmail   string                 `json:"customer_email"`
	CustomerName    string                 `json:"customer_name"`
	CustomerPhone   string                 `json:"customer_phone"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
}

// CheckoutService turns a cart into a persisted order with line items
type CheckoutService struct {
	orders    OrderRepository
	publisher OrderPublisher
}

// NewCheckoutService creates a new checkout service. The publisher may be nil
// when no broker is configured.
func NewCheckoutService(orders OrderRepository, publisher OrderPublisher) *CheckoutService {
	return &CheckoutService{orders: orders, publisher: publisher}
}

// Checkout places an order for the given cart. The order row is written
// first, then its line items; a failure between the two leaves a pending
// order with no items, which the admin surface can reconcile. The caller is
// responsible for clearing the cart only after Checkout succeeds.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest, cart models.Cart) (*models.Order, error) {
	if cart.IsEmpty() {
		return nil, models.ErrEmptyCart
	}

	paymentMethod := "card"
	createReq := &models.OrderCreateRequest{
		OrderNumber:     models.GenerateOrderNumber(),
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		CustomerPhone:   optionalString(req.CustomerPhone),
		ShippingAddress: req.ShippingAddress,
		TotalAmount:     cart.Total(),
		Status:          models.OrderPending,
		PaymentMethod:   &paymentMethod,
		PaymentStatus:   models.PaymentCompleted,
	}

	order, err := s.orders.Create(createReq)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	items := buildOrderItems(order.ID, cart)
	if err := s.orders.CreateItems(order.ID, items); err != nil {
		return nil, fmt.Errorf("failed to save order items: %w", err)
	}
	order.Items = items

	if s.publisher != nil {
		// Best effort; a broker outage never fails a checkout
		if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
			log.Printf("order created event not published for %s: %v", order.OrderNumber, err)
		}
	}

	return order, nil
}

// GetOrder retrieves a placed order with its items by order number
func (s *CheckoutService) GetOrder(orderNumber string) (*models.Order, error) {
	return s.orders.GetByOrderNumber(orderNumber)
}

func buildOrderItems(orderID string, cart models.Cart) []*models.OrderItem {
	items := make([]*models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		item := &models.OrderItem{
			OrderID:    orderID,
			ItemName:   line.Name,
			ItemType:   line.Type,
			Quantity:   line.Quantity,
			UnitPrice:  line.Price,
			TotalPrice: line.Subtotal(),
			Size:       optionalString(line.Size),
		}
		if line.Type == models.ItemTypeTicket {
			item.TicketTypeID = optionalString(line.TicketTypeID)
		} else {
			item.ProductID = optionalString(line.ProductID)
		}
		items = append(items, item)
	}
	return items
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
