package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/services"
)

// CartHandler handles shopping cart requests. The cart lives in the cookie
// session; every request reconstructs a cart store around it.
type CartHandler struct {
	catalog *services.CatalogService
	store   sessions.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(catalog *services.CatalogService, store sessions.Store) *CartHandler {
	return &CartHandler{catalog: catalog, store: store}
}

// AddItemRequest is the add-to-cart payload. The server resolves name, price
// and image from the catalog; the client only picks the item.
type AddItemRequest struct {
	Type         models.ItemType `json:"type"`
	ProductID    string          `json:"product_id,omitempty"`
	TicketTypeID string          `json:"ticket_type_id,omitempty"`
	Quantity     int             `json:"quantity"`
	Size         string          `json:"size,omitempty"`
}

// UpdateQuantityRequest is the quantity update payload
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) cartStore(w http.ResponseWriter, r *http.Request) *services.CartStore {
	return services.NewCartStore(NewSessionCartStorage(h.store, w, r))
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.cartStore(w, r)
	respondJSON(w, http.StatusOK, cartPayload(store))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	line, err := h.buildLineItem(&req)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) || errors.Is(err, models.ErrTicketTypeNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		if errors.Is(err, models.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid cart item")
			return
		}
		log.Printf("add to cart failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	store := h.cartStore(w, r)
	if _, err := store.AddItem(*line); err != nil {
		log.Printf("failed to persist cart: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	respondJSON(w, http.StatusOK, cartPayload(store))
}

// UpdateQuantity handles POST /cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	store := h.cartStore(w, r)
	if err := store.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity); err != nil {
		log.Printf("failed to persist cart: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	respondJSON(w, http.StatusOK, cartPayload(store))
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store := h.cartStore(w, r)
	if err := store.RemoveItem(chi.URLParam(r, "id")); err != nil {
		log.Printf("failed to persist cart: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	respondJSON(w, http.StatusOK, cartPayload(store))
}

// ClearCart handles POST /cart/clear
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := h.cartStore(w, r)
	if err := store.Clear(); err != nil {
		log.Printf("failed to persist cart: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	respondJSON(w, http.StatusOK, cartPayload(store))
}

// buildLineItem resolves the selected catalog item into a cart line with
// server-side name and price
func (h *CartHandler) buildLineItem(req *AddItemRequest) (*models.CartLineItem, error) {
	switch req.Type {
	case models.ItemTypeProduct:
		if req.ProductID == "" {
			return nil, models.ErrInvalidInput
		}

		product, err := h.catalog.GetProduct(req.ProductID)
		if err != nil {
			return nil, err
		}

		if req.Size != "" && !product.HasSize(req.Size) {
			return nil, models.ErrInvalidInput
		}

		return &models.CartLineItem{
			Type:      models.ItemTypeProduct,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  req.Quantity,
			Image:     product.PrimaryImage(),
			Size:      req.Size,
			ProductID: product.ID,
		}, nil

	case models.ItemTypeTicket:
		if req.TicketTypeID == "" {
			return nil, models.ErrInvalidInput
		}

		ticketType, err := h.catalog.GetTicketType(req.TicketTypeID)
		if err != nil {
			return nil, err
		}

		line := &models.CartLineItem{
			Type:         models.ItemTypeTicket,
			Name:         ticketType.Name,
			Price:        ticketType.Price,
			Quantity:     req.Quantity,
			TicketTypeID: ticketType.ID,
		}

		// Event lookup fails open; the line renders without the event name
		if event, err := h.catalog.GetEvent(ticketType.EventID); err == nil {
			line.EventName = event.Name
			if len(event.Images) > 0 {
				line.Image = event.Images[0]
			}
		}

		return line, nil

	default:
		return nil, models.ErrInvalidInput
	}
}

func cartPayload(store *services.CartStore) map[string]interface{} {
	cart := store.Cart()
	return map[string]interface{}{
		"items": cart.Items,
		"total": cart.Total(),
		"count": cart.Count(),
	}
}
