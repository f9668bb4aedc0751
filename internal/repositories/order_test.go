package repositories

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"sesotho-storefront/internal/models"
)

// setupOrderTestDB opens the database named by TEST_DATABASE_URL. Tests are
// skipped when no test database is configured.
func setupOrderTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepository(db)

	phone := "+26612345678"
	method := "card"
	req := &models.OrderCreateRequest{
		OrderNumber:   models.GenerateOrderNumber(),
		CustomerEmail: "thabo@example.com",
		CustomerName:  "Thabo Mokoena",
		CustomerPhone: &phone,
		ShippingAddress: models.ShippingAddress{
			Street:  "12 Kingsway",
			City:    "Maseru",
			Country: "Lesotho",
		},
		TotalAmount:   115000,
		Status:        models.OrderPending,
		PaymentMethod: &method,
		PaymentStatus: models.PaymentCompleted,
	}

	order, err := repo.Create(req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if order.ID == "" {
		t.Error("created order has no ID")
	}
	if order.OrderNumber != req.OrderNumber {
		t.Errorf("OrderNumber = %v, want %v", order.OrderNumber, req.OrderNumber)
	}
	if order.ShippingAddress.City != "Maseru" {
		t.Errorf("ShippingAddress.City = %v, want Maseru", order.ShippingAddress.City)
	}

	productID := "11111111-1111-1111-1111-111111111111"
	size := "M"
	items := []*models.OrderItem{
		{
			ProductID:  &productID,
			ItemName:   "Heritage Tee",
			ItemType:   models.ItemTypeProduct,
			Quantity:   2,
			UnitPrice:  45000,
			TotalPrice: 90000,
			Size:       &size,
		},
	}
	if err := repo.CreateItems(order.ID, items); err != nil {
		t.Fatalf("CreateItems() error = %v", err)
	}

	fetched, err := repo.GetByOrderNumber(order.OrderNumber)
	if err != nil {
		t.Fatalf("GetByOrderNumber() error = %v", err)
	}
	if len(fetched.Items) != 1 {
		t.Fatalf("fetched %d items, want 1", len(fetched.Items))
	}
	if fetched.Items[0].TotalPrice != 90000 {
		t.Errorf("item TotalPrice = %d, want 90000", fetched.Items[0].TotalPrice)
	}
}

func TestOrderRepository_Create_ValidationError(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.Create(&models.OrderCreateRequest{
		OrderNumber:   "not-a-valid-number",
		CustomerEmail: "thabo@example.com",
		CustomerName:  "Thabo Mokoena",
		Status:        models.OrderPending,
		PaymentStatus: models.PaymentCompleted,
	})
	if err == nil {
		t.Error("expected validation error for malformed order number")
	}
}

func TestOrderRepository_CreateItems_Empty(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepository(db)

	if err := repo.CreateItems("order-1", nil); err == nil {
		t.Error("expected error for empty item set")
	}
}

func TestOrderRepository_GetByOrderNumber_NotFound(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.GetByOrderNumber("SF-0000000000000-ZZZZZZZZZ")
	if err != models.ErrOrderNotFound {
		t.Errorf("error = %v, want ErrOrderNotFound", err)
	}
}
