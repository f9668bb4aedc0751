package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/repositories"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(filters repositories.ProductFilters) ([]*models.Product, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(req *models.ProductCreateRequest) (*models.Product, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(id string, req *models.ProductUpdateRequest) (*models.Product, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) List(filters repositories.EventFilters) ([]*models.Event, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *MockEventRepository) GetByID(id string) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) Create(req *models.EventCreateRequest) (*models.Event, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) Update(id string, req *models.EventUpdateRequest) (*models.Event, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockArtistRepository is a mock implementation of ArtistRepository
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) List(filters repositories.ArtistFilters) ([]*models.Artist, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetByID(id string) (*models.Artist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) Create(req *models.ArtistCreateRequest) (*models.Artist, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) Update(id string, req *models.ArtistUpdateRequest) (*models.Artist, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

// MockTicketTypeRepository is a mock implementation of TicketTypeRepository
type MockTicketTypeRepository struct {
	mock.Mock
}

func (m *MockTicketTypeRepository) ListByEvent(eventID string) ([]*models.TicketType, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TicketType), args.Error(1)
}

func (m *MockTicketTypeRepository) GetByID(id string) (*models.TicketType, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TicketType), args.Error(1)
}

func (m *MockTicketTypeRepository) Create(req *models.TicketTypeCreateRequest) (*models.TicketType, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TicketType), args.Error(1)
}

func (m *MockTicketTypeRepository) Update(id string, req *models.TicketTypeUpdateRequest) (*models.TicketType, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TicketType), args.Error(1)
}

func newTestCatalogService() (*CatalogService, *MockProductRepository, *MockEventRepository, *MockArtistRepository, *MockTicketTypeRepository) {
	products := &MockProductRepository{}
	events := &MockEventRepository{}
	artists := &MockArtistRepository{}
	ticketTypes := &MockTicketTypeRepository{}
	return NewCatalogService(products, events, artists, ticketTypes), products, events, artists, ticketTypes
}

func TestCatalogService_ListProducts_FailsOpen(t *testing.T) {
	service, products, _, _, _ := newTestCatalogService()

	products.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	result := service.ListProducts(repositories.ProductFilters{})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCatalogService_ListProducts_PassesFilters(t *testing.T) {
	service, products, _, _, _ := newTestCatalogService()

	featured := true
	filters := repositories.ProductFilters{Category: "apparel", Featured: &featured, Limit: 4}
	products.On("List", filters).Return([]*models.Product{{ID: "p1", Name: "Heritage Tee"}}, nil)

	result := service.ListProducts(filters)

	require.Len(t, result, 1)
	assert.Equal(t, "p1", result[0].ID)
	products.AssertExpectations(t)
}

func TestCatalogService_GetEvent_AttachesTicketTypes(t *testing.T) {
	service, _, events, _, ticketTypes := newTestCatalogService()

	events.On("GetByID", "e1").Return(&models.Event{ID: "e1", Name: "Sesotho Sessions"}, nil)
	ticketTypes.On("ListByEvent", "e1").Return([]*models.TicketType{
		{ID: "tt1", EventID: "e1", Name: "General Admission", Price: 25000},
	}, nil)

	event, err := service.GetEvent("e1")

	require.NoError(t, err)
	require.Len(t, event.TicketTypes, 1)
	assert.Equal(t, "tt1", event.TicketTypes[0].ID)
}

func TestCatalogService_GetEvent_TicketTypeFailureFailsOpen(t *testing.T) {
	service, _, events, _, ticketTypes := newTestCatalogService()

	events.On("GetByID", "e1").Return(&models.Event{ID: "e1"}, nil)
	ticketTypes.On("ListByEvent", "e1").Return(nil, errors.New("connection refused"))

	event, err := service.GetEvent("e1")

	require.NoError(t, err)
	assert.Empty(t, event.TicketTypes)
}

func TestCatalogService_GetEvent_NotFound(t *testing.T) {
	service, _, events, _, _ := newTestCatalogService()

	events.On("GetByID", "missing").Return(nil, models.ErrEventNotFound)

	_, err := service.GetEvent("missing")

	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestCatalogService_ListEvents_FailsOpen(t *testing.T) {
	service, _, events, _, _ := newTestCatalogService()

	events.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	result := service.ListEvents(repositories.EventFilters{})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCatalogService_ListArtists_FailsOpen(t *testing.T) {
	service, _, _, artists, _ := newTestCatalogService()

	artists.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	result := service.ListArtists(repositories.ArtistFilters{})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
