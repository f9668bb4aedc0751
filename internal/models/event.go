package models

import (
	"errors"
	"strings"
	"time"
)

// EventStatus represents the status of an event
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Event represents an event in the catalog
type Event struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Description string      `json:"description" db:"description"`
	EventDate   time.Time   `json:"event_date" db:"event_date"`
	Location    string      `json:"location" db:"location"`
	Images      []string    `json:"images" db:"images"`
	Lineup      []string    `json:"lineup" db:"lineup"`
	Status      EventStatus `json:"status" db:"status"`
	Featured    bool        `json:"featured" db:"featured"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`

	// Related data
	TicketTypes []*TicketType `json:"ticket_types,omitempty"`
}

// EventCreateRequest represents the data needed to create a new event
type EventCreateRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	EventDate   time.Time   `json:"event_date"`
	Location    string      `json:"location"`
	Images      []string    `json:"images"`
	Lineup      []string    `json:"lineup"`
	Status      EventStatus `json:"status"`
	Featured    bool        `json:"featured"`
}

// EventUpdateRequest represents the data that can be updated for an event
type EventUpdateRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	EventDate   time.Time   `json:"event_date"`
	Location    string      `json:"location"`
	Images      []string    `json:"images"`
	Lineup      []string    `json:"lineup"`
	Status      EventStatus `json:"status"`
	Featured    bool        `json:"featured"`
}

// Validate validates the event data
func (e *Event) Validate() error {
	if err := validateEventName(e.Name); err != nil {
		return err
	}
	return validateEventStatus(e.Status)
}

// Validate validates event creation data
func (req *EventCreateRequest) Validate() error {
	if err := validateEventName(req.Name); err != nil {
		return err
	}
	if req.EventDate.IsZero() {
		return errors.New("event date is required")
	}
	if req.Status == "" {
		return nil // defaults to upcoming
	}
	return validateEventStatus(req.Status)
}

// Validate validates event update data
func (req *EventUpdateRequest) Validate() error {
	if err := validateEventName(req.Name); err != nil {
		return err
	}
	return validateEventStatus(req.Status)
}

// IsUpcoming reports whether the event has not yet started
func (e *Event) IsUpcoming() bool {
	return e.Status == EventUpcoming
}

// IsCancelled reports whether the event was cancelled
func (e *Event) IsCancelled() bool {
	return e.Status == EventCancelled
}

// TicketsOnSale reports whether tickets for this event can be bought
func (e *Event) TicketsOnSale() bool {
	return e.Status == EventUpcoming || e.Status == EventOngoing
}

func validateEventName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("event name is required")
	}
	if len(name) > 255 {
		return errors.New("event name must be less than 255 characters")
	}
	return nil
}

func validateEventStatus(status EventStatus) error {
	switch status {
	case EventUpcoming, EventOngoing, EventCompleted, EventCancelled:
		return nil
	default:
		return errors.New("invalid event status")
	}
}
