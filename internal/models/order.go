package models

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

// OrderStatus represents the fulfilment status of an order
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderPaid       OrderStatus = "paid"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ShippingAddress is the nested address structure stored with an order
type ShippingAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Order represents a placed order
type Order struct {
	ID              string          `json:"id" db:"id"`
	OrderNumber     string          `json:"order_number" db:"order_number"`
	CustomerEmail   string          `json:"customer_email" db:"customer_email"`
	CustomerName    string          `json:"customer_name" db:"customer_name"`
	CustomerPhone   *string         `json:"customer_phone" db:"customer_phone"`
	ShippingAddress ShippingAddress `json:"shipping_address" db:"shipping_address"`
	TotalAmount     int             `json:"total_amount" db:"total_amount"` // Amount in cents
	Status          OrderStatus     `json:"status" db:"status"`
	PaymentMethod   *string         `json:"payment_method" db:"payment_method"`
	PaymentStatus   PaymentStatus   `json:"payment_status" db:"payment_status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`

	// Related data
	Items []*OrderItem `json:"items,omitempty"`
}

// OrderItem carries a denormalized copy of one cart line at purchase time
type OrderItem struct {
	ID           string    `json:"id" db:"id"`
	OrderID      string    `json:"order_id" db:"order_id"`
	ProductID    *string   `json:"product_id" db:"product_id"`
	TicketTypeID *string   `json:"ticket_type_id" db:"ticket_type_id"`
	ItemName     string    `json:"item_name" db:"item_name"`
	ItemType     ItemType  `json:"item_type" db:"item_type"`
	Quantity     int       `json:"quantity" db:"quantity"`
	UnitPrice    int       `json:"unit_price" db:"unit_price"`   // cents
	TotalPrice   int       `json:"total_price" db:"total_price"` // cents
	Size         *string   `json:"size" db:"size"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// OrderCreateRequest represents the data needed to create a new order
type OrderCreateRequest struct {
	OrderNumber     string          `json:"order_number"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   *string         `json:"customer_phone"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	TotalAmount     int             `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   *string         `json:"payment_method"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
}

var (
	// Order number format: SF-<unix millis>-<9 base36 chars> (e.g. SF-1710000000000-A1B2C3D4E)
	orderNumberRegex = regexp.MustCompile(`^SF-\d{10,14}-[0-9A-Z]{9}$`)
	// Email validation regex for orders
	orderEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Validate validates order creation data
func (req *OrderCreateRequest) Validate() error {
	if err := validateOrderNumber(req.OrderNumber); err != nil {
		return err
	}

	if err := validateOrderTotalAmount(req.TotalAmount); err != nil {
		return err
	}

	if err := validateOrderStatus(req.Status); err != nil {
		return err
	}

	if err := validatePaymentStatus(req.PaymentStatus); err != nil {
		return err
	}

	return validateCustomerInfo(req.CustomerEmail, req.CustomerName)
}

// Validate validates the order data
func (o *Order) Validate() error {
	if err := validateOrderNumber(o.OrderNumber); err != nil {
		return err
	}

	if err := validateOrderTotalAmount(o.TotalAmount); err != nil {
		return err
	}

	if err := validateOrderStatus(o.Status); err != nil {
		return err
	}

	if err := validatePaymentStatus(o.PaymentStatus); err != nil {
		return err
	}

	return validateCustomerInfo(o.CustomerEmail, o.CustomerName)
}

// Validate validates an order item
func (oi *OrderItem) Validate() error {
	if strings.TrimSpace(oi.ItemName) == "" {
		return errors.New("item name is required")
	}

	if oi.ItemType != ItemTypeProduct && oi.ItemType != ItemTypeTicket {
		return errors.New("invalid item type")
	}

	if oi.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	if oi.UnitPrice < 0 {
		return errors.New("unit price cannot be negative")
	}

	if oi.ProductID == nil && oi.TicketTypeID == nil {
		return errors.New("order item must reference a product or ticket type")
	}

	return nil
}

func validateOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errors.New("order number is required")
	}

	if !orderNumberRegex.MatchString(orderNumber) {
		return errors.New("order number format is invalid")
	}

	return nil
}

func validateOrderTotalAmount(totalAmount int) error {
	if totalAmount < 0 {
		return errors.New("total amount cannot be negative")
	}

	// Maximum order amount of R100,000 (10,000,000 cents)
	if totalAmount > 10000000 {
		return errors.New("total amount cannot exceed R100,000")
	}

	return nil
}

func validateOrderStatus(status OrderStatus) error {
	switch status {
	case OrderPending, OrderPaid, OrderProcessing, OrderShipped, OrderCompleted, OrderCancelled:
		return nil
	default:
		return errors.New("invalid order status")
	}
}

func validatePaymentStatus(status PaymentStatus) error {
	switch status {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errors.New("invalid payment status")
	}
}

func validateCustomerInfo(customerEmail, customerName string) error {
	if customerEmail == "" {
		return errors.New("customer email is required")
	}

	if customerName == "" {
		return errors.New("customer name is required")
	}

	if len(customerEmail) > 255 {
		return errors.New("customer email must be less than 255 characters")
	}

	if len(customerName) > 255 {
		return errors.New("customer name must be less than 255 characters")
	}

	if !orderEmailRegex.MatchString(customerEmail) {
		return errors.New("customer email format is invalid")
	}

	if strings.TrimSpace(customerName) == "" {
		return errors.New("customer name cannot be only whitespace")
	}

	return nil
}

const orderNumberSuffixLength = 9

// GenerateOrderNumber generates a human-readable order number with a
// timestamp component and a random base36 suffix. Uniqueness is best effort;
// the orders table carries the unique constraint that actually enforces it.
func GenerateOrderNumber() string {
	now := time.Now().UnixMilli()

	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffix := make([]byte, orderNumberSuffixLength)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			// Fallback to a timestamp-derived character if crypto/rand fails
			suffix[i] = alphabet[(now+int64(i))%int64(len(alphabet))]
			continue
		}
		suffix[i] = alphabet[n.Int64()]
	}

	return fmt.Sprintf("SF-%d-%s", now, suffix)
}

// IsPending returns true if the order is awaiting fulfilment
func (o *Order) IsPending() bool {
	return o.Status == OrderPending
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderCancelled
}

// CanBeCancelled returns true if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderPending || o.Status == OrderPaid
}

// TotalAmountInCurrency returns the total amount in the main currency unit
func (o *Order) TotalAmountInCurrency() float64 {
	return float64(o.TotalAmount) / 100.0
}

// GetStatusDisplayName returns a human-readable status name
func (o *Order) GetStatusDisplayName() string {
	switch o.Status {
	case OrderPending:
		return "Pending"
	case OrderPaid:
		return "Paid"
	case OrderProcessing:
		return "Processing"
	case OrderShipped:
		return "Shipped"
	case OrderCompleted:
		return "Completed"
	case OrderCancelled:
		return "Cancelled"
	default:
		return string(o.Status)
	}
}
