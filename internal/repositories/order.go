package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"sesotho-storefront/internal/models"

	"github.com/google/uuid"
)

// OrderRepository handles order data operations
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, order_number, customer_email, customer_name, customer_phone, shipping_address, total_amount, status, payment_method, payment_status, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*models.Order, error) {
	order := &models.Order{}
	var shippingAddress []byte
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerEmail,
		&order.CustomerName,
		&order.CustomerPhone,
		&shippingAddress,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentMethod,
		&order.PaymentStatus,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(shippingAddress) > 0 {
		if err := json.Unmarshal(shippingAddress, &order.ShippingAddress); err != nil {
			return nil, fmt.Errorf("failed to decode shipping address: %w", err)
		}
	}

	return order, nil
}

// Create creates a new order row
func (r *OrderRepository) Create(req *models.OrderCreateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	shippingAddress, err := json.Marshal(req.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shipping address: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO orders (id, order_number, customer_email, customer_name, customer_phone, shipping_address, total_amount, status, payment_method, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s`, orderColumns)

	now := time.Now()
	order, err := scanOrder(r.db.QueryRow(
		query,
		uuid.NewString(),
		req.OrderNumber,
		req.CustomerEmail,
		req.CustomerName,
		req.CustomerPhone,
		shippingAddress,
		req.TotalAmount,
		req.Status,
		req.PaymentMethod,
		req.PaymentStatus,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// CreateItems inserts the denormalized line items for an order. The items are
// written in a single transaction so an order never ends up with a partial
// item set, but that transaction is separate from the order insert itself.
func (r *OrderRepository) CreateItems(orderID string, items []*models.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("no order items to create")
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO order_items (id, order_id, product_id, ticket_type_id, item_name, item_type, quantity, unit_price, total_price, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		_, err := tx.Exec(
			query,
			uuid.NewString(),
			orderID,
			item.ProductID,
			item.TicketTypeID,
			item.ItemName,
			item.ItemType,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
			item.Size,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order items: %w", err)
	}

	return nil
}

// GetByOrderNumber retrieves an order with its items by order number
func (r *OrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders WHERE order_number = $1", orderColumns)

	order, err := scanOrder(r.db.QueryRow(query, orderNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by number: %w", err)
	}

	items, err := r.getItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *OrderRepository) getItems(orderID string) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, ticket_type_id, item_name, item_type, quantity, unit_price, total_price, size, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.TicketTypeID,
			&item.ItemName,
			&item.ItemType,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.Size,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
