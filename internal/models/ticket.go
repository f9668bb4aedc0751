package models

import (
	"errors"
	"strings"
	"time"
)

// TicketType represents a class of ticket sold for an event
type TicketType struct {
	ID                string    `json:"id" db:"id"`
	EventID           string    `json:"event_id" db:"event_id"`
	Name              string    `json:"name" db:"name"`
	Description       *string   `json:"description" db:"description"`
	Price             int       `json:"price" db:"price"` // Price in cents
	QuantityAvailable int       `json:"quantity_available" db:"quantity_available"`
	QuantitySold      int       `json:"quantity_sold" db:"quantity_sold"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// TicketTypeCreateRequest represents the data needed to create a ticket type
type TicketTypeCreateRequest struct {
	EventID           string  `json:"event_id"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	Price             int     `json:"price"`
	QuantityAvailable int     `json:"quantity_available"`
}

// TicketTypeUpdateRequest represents the data that can be updated for a ticket type
type TicketTypeUpdateRequest struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	Price             int     `json:"price"`
	QuantityAvailable int     `json:"quantity_available"`
}

// Validate validates ticket type creation data
func (req *TicketTypeCreateRequest) Validate() error {
	if req.EventID == "" {
		return errors.New("event id is required")
	}
	if err := validateTicketTypeName(req.Name); err != nil {
		return err
	}
	if req.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if req.QuantityAvailable < 0 {
		return errors.New("quantity available cannot be negative")
	}
	return nil
}

// Validate validates ticket type update data
func (req *TicketTypeUpdateRequest) Validate() error {
	if err := validateTicketTypeName(req.Name); err != nil {
		return err
	}
	if req.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if req.QuantityAvailable < 0 {
		return errors.New("quantity available cannot be negative")
	}
	return nil
}

// Available returns the number of tickets still purchasable
func (tt *TicketType) Available() int {
	remaining := tt.QuantityAvailable - tt.QuantitySold
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsAvailable reports whether any tickets remain
func (tt *TicketType) IsAvailable() bool {
	return tt.Available() > 0
}

// PriceInCurrency returns the price in the main currency unit
func (tt *TicketType) PriceInCurrency() float64 {
	return float64(tt.Price) / 100.0
}

func validateTicketTypeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("ticket type name is required")
	}
	if len(name) > 255 {
		return errors.New("ticket type name must be less than 255 characters")
	}
	return nil
}
