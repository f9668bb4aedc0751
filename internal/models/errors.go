package models

import "errors"

// Common errors used throughout the application
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrArtistNotFound     = errors.New("artist not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrEmptyCart          = errors.New("cart is empty")
)
