package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sesotho-storefront/internal/models"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// respondNotFoundOr maps sentinel not-found errors to 404 and everything
// else to 500
func respondNotFoundOr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrArtistNotFound),
		errors.Is(err, models.ErrTicketTypeNotFound),
		errors.Is(err, models.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "Not Found")
	default:
		log.Printf("request failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
