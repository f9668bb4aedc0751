package services

import (
	"context"

	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/repositories"
)

// ProductRepository defines the product data operations used by services
type ProductRepository interface {
	List(filters repositories.ProductFilters) ([]*models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(req *models.ProductCreateRequest) (*models.Product, error)
	Update(id string, req *models.ProductUpdateRequest) (*models.Product, error)
	Delete(id string) error
}

// EventRepository defines the event data operations used by services
type EventRepository interface {
	List(filters repositories.EventFilters) ([]*models.Event, error)
	GetByID(id string) (*models.Event, error)
	Create(req *models.EventCreateRequest) (*models.Event, error)
	Update(id string, req *models.EventUpdateRequest) (*models.Event, error)
	Delete(id string) error
}

// ArtistRepository defines the artist data operations used by services
type ArtistRepository interface {
	List(filters repositories.ArtistFilters) ([]*models.Artist, error)
	GetByID(id string) (*models.Artist, error)
	Create(req *models.ArtistCreateRequest) (*models.Artist, error)
	Update(id string, req *models.ArtistUpdateRequest) (*models.Artist, error)
}

// TicketTypeRepository defines the ticket type data operations used by services
type TicketTypeRepository interface {
	ListByEvent(eventID string) ([]*models.TicketType, error)
	GetByID(id string) (*models.TicketType, error)
	Create(req *models.TicketTypeCreateRequest) (*models.TicketType, error)
	Update(id string, req *models.TicketTypeUpdateRequest) (*models.TicketType, error)
}

// OrderRepository defines the order data operations used by services
type OrderRepository interface {
	Create(req *models.OrderCreateRequest) (*models.Order, error)
	CreateItems(orderID string, items []*models.OrderItem) error
	GetByOrderNumber(orderNumber string) (*models.Order, error)
}

// OrderPublisher publishes order lifecycle events to interested consumers
type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
}
