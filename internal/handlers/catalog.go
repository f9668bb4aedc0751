package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/repositories"
	"sesotho-storefront/internal/services"
)

// CatalogHandler serves the public browsing endpoints
type CatalogHandler struct {
	catalog *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filters := repositories.ProductFilters{
		Category: r.URL.Query().Get("category"),
		Featured: parseBoolParam(r, "featured"),
		Limit:    parseIntParam(r, "limit"),
	}

	if categories := r.URL.Query().Get("categories"); categories != "" {
		filters.Categories = strings.Split(categories, ",")
	}

	products := h.catalog.ListProducts(filters)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// ListEvents handles GET /api/events
func (h *CatalogHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filters := repositories.EventFilters{
		Status:   models.EventStatus(r.URL.Query().Get("status")),
		Featured: parseBoolParam(r, "featured"),
		Limit:    parseIntParam(r, "limit"),
		SortDesc: r.URL.Query().Get("order") == "desc",
	}

	if statuses := r.URL.Query().Get("statuses"); statuses != "" {
		for _, s := range strings.Split(statuses, ",") {
			filters.Statuses = append(filters.Statuses, models.EventStatus(s))
		}
	}

	events := h.catalog.ListEvents(filters)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
	})
}

// GetEvent handles GET /api/events/{id}
func (h *CatalogHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.catalog.GetEvent(chi.URLParam(r, "id"))
	if err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// ListTicketTypes handles GET /api/events/{id}/ticket-types
func (h *CatalogHandler) ListTicketTypes(w http.ResponseWriter, r *http.Request) {
	ticketTypes := h.catalog.ListTicketTypes(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ticket_types": ticketTypes,
	})
}

// ListArtists handles GET /api/artists
func (h *CatalogHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	filters := repositories.ArtistFilters{
		Featured: parseBoolParam(r, "featured"),
		Genre:    r.URL.Query().Get("genre"),
		Limit:    parseIntParam(r, "limit"),
	}

	artists := h.catalog.ListArtists(filters)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"artists": artists,
	})
}

// GetArtist handles GET /api/artists/{id}
func (h *CatalogHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := h.catalog.GetArtist(chi.URLParam(r, "id"))
	if err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, artist)
}

func parseBoolParam(r *http.Request, name string) *bool {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseIntParam(r *http.Request, name string) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}
