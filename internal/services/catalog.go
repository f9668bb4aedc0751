package services

import (
	"log"

	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/repositories"
)

// CatalogService provides read and admin operations over the storefront
// catalog. Listing reads fail open: a query error logs and yields an empty
// result so browsing pages still render.
type CatalogService struct {
	products    ProductRepository
	events      EventRepository
	artists     ArtistRepository
	ticketTypes TicketTypeRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	products ProductRepository,
	events EventRepository,
	artists ArtistRepository,
	ticketTypes TicketTypeRepository,
) *CatalogService {
	return &CatalogService{
		products:    products,
		events:      events,
		artists:     artists,
		ticketTypes: ticketTypes,
	}
}

// ListProducts retrieves products matching the filters, empty on failure
func (s *CatalogService) ListProducts(filters repositories.ProductFilters) []*models.Product {
	products, err := s.products.List(filters)
	if err != nil {
		log.Printf("product listing failed: %v", err)
		return []*models.Product{}
	}
	if products == nil {
		return []*models.Product{}
	}
	return products
}

// GetProduct retrieves a single product by ID
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.products.GetByID(id)
}

// ListEvents retrieves events matching the filters, empty on failure
func (s *CatalogService) ListEvents(filters repositories.EventFilters) []*models.Event {
	events, err := s.events.List(filters)
	if err != nil {
		log.Printf("event listing failed: %v", err)
		return []*models.Event{}
	}
	if events == nil {
		return []*models.Event{}
	}
	return events
}

// GetEvent retrieves an event with its ticket types attached
func (s *CatalogService) GetEvent(id string) (*models.Event, error) {
	event, err := s.events.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Ticket type loading fails open; the event page renders without them
	ticketTypes, err := s.ticketTypes.ListByEvent(id)
	if err != nil {
		log.Printf("ticket type listing failed for event %s: %v", id, err)
		ticketTypes = nil
	}
	event.TicketTypes = ticketTypes

	return event, nil
}

// ListTicketTypes retrieves the ticket types for an event, empty on failure
func (s *CatalogService) ListTicketTypes(eventID string) []*models.TicketType {
	ticketTypes, err := s.ticketTypes.ListByEvent(eventID)
	if err != nil {
		log.Printf("ticket type listing failed for event %s: %v", eventID, err)
		return []*models.TicketType{}
	}
	if ticketTypes == nil {
		return []*models.TicketType{}
	}
	return ticketTypes
}

// GetTicketType retrieves a single ticket type by ID
func (s *CatalogService) GetTicketType(id string) (*models.TicketType, error) {
	return s.ticketTypes.GetByID(id)
}

// ListArtists retrieves artists matching the filters, empty on failure
func (s *CatalogService) ListArtists(filters repositories.ArtistFilters) []*models.Artist {
	artists, err := s.artists.List(filters)
	if err != nil {
		log.Printf("artist listing failed: %v", err)
		return []*models.Artist{}
	}
	if artists == nil {
		return []*models.Artist{}
	}
	return artists
}

// GetArtist retrieves a single artist by ID
func (s *CatalogService) GetArtist(id string) (*models.Artist, error) {
	return s.artists.GetByID(id)
}

// CreateProduct creates a new product
func (s *CatalogService) CreateProduct(req *models.ProductCreateRequest) (*models.Product, error) {
	return s.products.Create(req)
}

// UpdateProduct updates an existing product
func (s *CatalogService) UpdateProduct(id string, req *models.ProductUpdateRequest) (*models.Product, error) {
	return s.products.Update(id, req)
}

// DeleteProduct removes a product
func (s *CatalogService) DeleteProduct(id string) error {
	return s.products.Delete(id)
}

// CreateEvent creates a new event
func (s *CatalogService) CreateEvent(req *models.EventCreateRequest) (*models.Event, error) {
	return s.events.Create(req)
}

// UpdateEvent updates an existing event
func (s *CatalogService) UpdateEvent(id string, req *models.EventUpdateRequest) (*models.Event, error) {
	return s.events.Update(id, req)
}

// DeleteEvent removes an event and its ticket types
func (s *CatalogService) DeleteEvent(id string) error {
	return s.events.Delete(id)
}

// CreateArtist creates a new artist
func (s *CatalogService) CreateArtist(req *models.ArtistCreateRequest) (*models.Artist, error) {
	return s.artists.Create(req)
}

// UpdateArtist updates an existing artist
func (s *CatalogService) UpdateArtist(id string, req *models.ArtistUpdateRequest) (*models.Artist, error) {
	return s.artists.Update(id, req)
}

// CreateTicketType creates a new ticket type for an event
func (s *CatalogService) CreateTicketType(req *models.TicketTypeCreateRequest) (*models.TicketType, error) {
	return s.ticketTypes.Create(req)
}

// UpdateTicketType updates a ticket type
func (s *CatalogService) UpdateTicketType(id string, req *models.TicketTypeUpdateRequest) (*models.TicketType, error) {
	return s.ticketTypes.Update(id, req)
}
