package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"sesotho-storefront/internal/middleware"
	"sesotho-storefront/internal/models"
	"sesotho-storefront/internal/services"
	"sesotho-storefront/internal/utils"
)

// AdminHandler serves the admin login and catalog management endpoints
type AdminHandler struct {
	catalog      *services.CatalogService
	media        *services.MediaService
	store        sessions.Store
	passwordHash string
}

// NewAdminHandler creates a new admin handler. An empty passwordHash
// disables login entirely.
func NewAdminHandler(catalog *services.CatalogService, media *services.MediaService, store sessions.Store, passwordHash string) *AdminHandler {
	return &AdminHandler{
		catalog:      catalog,
		media:        media,
		store:        store,
		passwordHash: passwordHash,
	}
}

// LoginRequest is the admin login payload
type LoginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.passwordHash == "" {
		respondError(w, http.StatusForbidden, "Admin access is not configured")
		return
	}

	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok, err := utils.VerifyPassword(req.Password, h.passwordHash)
	if err != nil {
		log.Printf("password verification failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session, _ := h.store.Get(r, middleware.SessionName)
	session.Values[middleware.AdminSessionKey] = true
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save session: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, middleware.SessionName)
	delete(session.Values, middleware.AdminSessionKey)
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save session: %v", err)
	}

	respondJSON(w, http.StatusOK, map[string]bool{"authenticated": false})
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.ProductCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalog.CreateProduct(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/{id}
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.ProductUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalog.UpdateProduct(chi.URLParam(r, "id"), &req)
	if err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/{id}
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteProduct(chi.URLParam(r, "id")); err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// CreateEvent handles POST /admin/events
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.catalog.CreateEvent(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, event)
}

// UpdateEvent handles PUT /admin/events/{id}
func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.catalog.UpdateEvent(chi.URLParam(r, "id"), &req)
	if err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE /admin/events/{id}
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteEvent(chi.URLParam(r, "id")); err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// CreateArtist handles POST /admin/artists
func (h *AdminHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req models.ArtistCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	artist, err := h.catalog.CreateArtist(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, artist)
}

// UpdateArtist handles PUT /admin/artists/{id}
func (h *AdminHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	var req models.ArtistUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	artist, err := h.catalog.UpdateArtist(chi.URLParam(r, "id"), &req)
	if err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, artist)
}

// CreateTicketType handles POST /admin/events/{id}/ticket-types
func (h *AdminHandler) CreateTicketType(w http.ResponseWriter, r *http.Request) {
	var req models.TicketTypeCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.EventID = chi.URLParam(r, "id")

	ticketType, err := h.catalog.CreateTicketType(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, ticketType)
}

// UpdateTicketType handles PUT /admin/ticket-types/{id}
func (h *AdminHandler) UpdateTicketType(w http.ResponseWriter, r *http.Request) {
	var req models.TicketTypeUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ticketType, err := h.catalog.UpdateTicketType(chi.URLParam(r, "id"), &req)
	if err != nil {
		respondNotFoundOr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ticketType)
}

// UploadMedia handles POST /admin/media
func (h *AdminHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(services.MaxMediaSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	result, err := h.media.UploadImage(r.Context(), file, header.Filename)
	if err != nil {
		log.Printf("media upload failed: %v", err)
		respondError(w, http.StatusBadRequest, "Failed to process image")
		return
	}

	respondJSON(w, http.StatusCreated, result)
}
