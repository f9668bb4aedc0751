package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"sesotho-storefront/internal/models"

	"github.com/google/uuid"
)

// TicketTypeRepository handles ticket type data operations
type TicketTypeRepository struct {
	db *sql.DB
}

// NewTicketTypeRepository creates a new ticket type repository
func NewTicketTypeRepository(db *sql.DB) *TicketTypeRepository {
	return &TicketTypeRepository{db: db}
}

const ticketTypeColumns = `id, event_id, name, description, price, quantity_available, quantity_sold, created_at, updated_at`

func scanTicketType(row interface{ Scan(...interface{}) error }) (*models.TicketType, error) {
	tt := &models.TicketType{}
	err := row.Scan(
		&tt.ID,
		&tt.EventID,
		&tt.Name,
		&tt.Description,
		&tt.Price,
		&tt.QuantityAvailable,
		&tt.QuantitySold,
		&tt.CreatedAt,
		&tt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tt, nil
}

// ListByEvent retrieves the ticket types for an event, cheapest first
func (r *TicketTypeRepository) ListByEvent(eventID string) ([]*models.TicketType, error) {
	query := fmt.Sprintf("SELECT %s FROM ticket_types WHERE event_id = $1 ORDER BY price ASC", ticketTypeColumns)

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	defer rows.Close()

	var ticketTypes []*models.TicketType
	for rows.Next() {
		tt, err := scanTicketType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket type: %w", err)
		}
		ticketTypes = append(ticketTypes, tt)
	}

	return ticketTypes, rows.Err()
}

// GetByID retrieves a ticket type by ID
func (r *TicketTypeRepository) GetByID(id string) (*models.TicketType, error) {
	query := fmt.Sprintf("SELECT %s FROM ticket_types WHERE id = $1", ticketTypeColumns)

	tt, err := scanTicketType(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}

	return tt, nil
}

// Create creates a new ticket type
func (r *TicketTypeRepository) Create(req *models.TicketTypeCreateRequest) (*models.TicketType, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO ticket_types (id, event_id, name, description, price, quantity_available, quantity_sold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)
		RETURNING %s`, ticketTypeColumns)

	now := time.Now()
	tt, err := scanTicketType(r.db.QueryRow(
		query,
		uuid.NewString(),
		req.EventID,
		req.Name,
		req.Description,
		req.Price,
		req.QuantityAvailable,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket type: %w", err)
	}

	return tt, nil
}

// Update updates a ticket type
func (r *TicketTypeRepository) Update(id string, req *models.TicketTypeUpdateRequest) (*models.TicketType, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE ticket_types
		SET name = $2, description = $3, price = $4, quantity_available = $5, updated_at = $6
		WHERE id = $1
		RETURNING %s`, ticketTypeColumns)

	tt, err := scanTicketType(r.db.QueryRow(
		query,
		id,
		req.Name,
		req.Description,
		req.Price,
		req.QuantityAvailable,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to update ticket type: %w", err)
	}

	return tt, nil
}
