package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sesotho-storefront/internal/models"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(req *models.OrderCreateRequest) (*models.Order, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateItems(orderID string, items []*models.OrderItem) error {
	args := m.Called(orderID, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	args := m.Called(orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// MockOrderPublisher is a mock implementation of OrderPublisher
type MockOrderPublisher struct {
	mock.Mock
}

func (m *MockOrderPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func checkoutCart() models.Cart {
	cart := models.Cart{}
	cart.AddItem(models.CartLineItem{
		Type:      models.ItemTypeProduct,
		Name:      "Heritage Tee",
		Price:     45000,
		Quantity:  2,
		Size:      "M",
		ProductID: "p1",
	})
	cart.AddItem(models.CartLineItem{
		Type:         models.ItemTypeTicket,
		Name:         "General Admission",
		Price:        25000,
		Quantity:     1,
		EventName:    "Sesotho Sessions",
		TicketTypeID: "tt1",
	})
	return cart
}

func checkoutRequest() CheckoutRequest {
	return CheckoutRequest{
		CustomerEmail: "thabo@example.com",
		CustomerName:  "Thabo Mokoena",
		CustomerPhone: "+26612345678",
		ShippingAddress: models.ShippingAddress{
			Street:  "12 Kingsway",
			City:    "Maseru",
			Country: "Lesotho",
		},
	}
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	mockRepo := &MockOrderRepository{}
	service := NewCheckoutService(mockRepo, nil)

	created := &models.Order{ID: "order-1", OrderNumber: "SF-1710000000000-A1B2C3D4E", TotalAmount: 115000}

	mockRepo.On("Create", mock.MatchedBy(func(req *models.OrderCreateRequest) bool {
		return req.CustomerEmail == "thabo@example.com" &&
			req.TotalAmount == 115000 &&
			req.Status == models.OrderPending &&
			req.PaymentStatus == models.PaymentCompleted &&
			req.PaymentMethod != nil && *req.PaymentMethod == "card"
	})).Return(created, nil)
	mockRepo.On("CreateItems", "order-1", mock.MatchedBy(func(items []*models.OrderItem) bool {
		return len(items) == 2
	})).Return(nil)

	order, err := service.Checkout(context.Background(), checkoutRequest(), checkoutCart())

	require.NoError(t, err)
	assert.Equal(t, "SF-1710000000000-A1B2C3D4E", order.OrderNumber)
	require.Len(t, order.Items, 2)

	// Denormalized lines carry the cart values
	assert.Equal(t, "Heritage Tee", order.Items[0].ItemName)
	assert.Equal(t, models.ItemTypeProduct, order.Items[0].ItemType)
	assert.Equal(t, 90000, order.Items[0].TotalPrice)
	require.NotNil(t, order.Items[0].ProductID)
	assert.Equal(t, "p1", *order.Items[0].ProductID)
	require.NotNil(t, order.Items[0].Size)
	assert.Equal(t, "M", *order.Items[0].Size)

	assert.Equal(t, models.ItemTypeTicket, order.Items[1].ItemType)
	require.NotNil(t, order.Items[1].TicketTypeID)
	assert.Equal(t, "tt1", *order.Items[1].TicketTypeID)
	assert.Nil(t, order.Items[1].ProductID)
	assert.Nil(t, order.Items[1].Size)

	mockRepo.AssertExpectations(t)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	mockRepo := &MockOrderRepository{}
	service := NewCheckoutService(mockRepo, nil)

	_, err := service.Checkout(context.Background(), checkoutRequest(), models.Cart{})

	assert.ErrorIs(t, err, models.ErrEmptyCart)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCheckoutService_Checkout_OrderCreateFails(t *testing.T) {
	mockRepo := &MockOrderRepository{}
	service := NewCheckoutService(mockRepo, nil)

	mockRepo.On("Create", mock.Anything).Return(nil, errors.New("insert failed"))

	_, err := service.Checkout(context.Background(), checkoutRequest(), checkoutCart())

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CreateItems", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_ItemsFailSurfaces(t *testing.T) {
	mockRepo := &MockOrderRepository{}
	service := NewCheckoutService(mockRepo, nil)

	created := &models.Order{ID: "order-1", OrderNumber: "SF-1710000000000-A1B2C3D4E"}
	mockRepo.On("Create", mock.Anything).Return(created, nil)
	mockRepo.On("CreateItems", "order-1", mock.Anything).Return(errors.New("insert failed"))

	_, err := service.Checkout(context.Background(), checkoutRequest(), checkoutCart())

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCheckoutService_Checkout_PublishFailureDoesNotFail(t *testing.T) {
	mockRepo := &MockOrderRepository{}
	mockPublisher := &MockOrderPublisher{}
	service := NewCheckoutService(mockRepo, mockPublisher)

	created := &models.Order{ID: "order-1", OrderNumber: "SF-1710000000000-A1B2C3D4E"}
	mockRepo.On("Create", mock.Anything).Return(created, nil)
	mockRepo.On("CreateItems", "order-1", mock.Anything).Return(nil)
	mockPublisher.On("PublishOrderCreated", mock.Anything, created).Return(errors.New("broker down"))

	order, err := service.Checkout(context.Background(), checkoutRequest(), checkoutCart())

	require.NoError(t, err)
	assert.NotNil(t, order)
	mockPublisher.AssertExpectations(t)
}

func TestCheckoutService_GetOrder(t *testing.T) {
	mockRepo := &MockOrderRepository{}
	service := NewCheckoutService(mockRepo, nil)

	mockRepo.On("GetByOrderNumber", "SF-1710000000000-A1B2C3D4E").
		Return(&models.Order{OrderNumber: "SF-1710000000000-A1B2C3D4E"}, nil)

	order, err := service.GetOrder("SF-1710000000000-A1B2C3D4E")

	require.NoError(t, err)
	assert.Equal(t, "SF-1710000000000-A1B2C3D4E", order.OrderNumber)
}
