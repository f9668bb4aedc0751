package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"sesotho-storefront/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EventRepository handles event data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventFilters represents filters for event listing
type EventFilters struct {
	Status   models.EventStatus   // Equality filter on status
	Statuses []models.EventStatus // Set-membership filter on status
	Featured *bool                // Filter by featured flag
	Limit    int                  // Number of results to return
	SortDesc bool                 // Sort by event_date descending instead of ascending
}

const eventColumns = `id, name, description, event_date, location, images, lineup, status, featured, created_at, updated_at`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.EventDate,
		&event.Location,
		pq.Array(&event.Images),
		pq.Array(&event.Lineup),
		&event.Status,
		&event.Featured,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// List retrieves events matching the given filters, ordered by event date
func (r *EventRepository) List(filters EventFilters) ([]*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE 1=1", eventColumns)
	args := []interface{}{}
	argIndex := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filters.Status)
		argIndex++
	}

	if len(filters.Statuses) > 0 {
		statuses := make([]string, len(filters.Statuses))
		for i, s := range filters.Statuses {
			statuses[i] = string(s)
		}
		query += fmt.Sprintf(" AND status = ANY($%d)", argIndex)
		args = append(args, pq.Array(statuses))
		argIndex++
	}

	if filters.Featured != nil {
		query += fmt.Sprintf(" AND featured = $%d", argIndex)
		args = append(args, *filters.Featured)
		argIndex++
	}

	direction := "ASC"
	if filters.SortDesc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY event_date %s", direction)

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filters.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)

	event, err := scanEvent(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// Create creates a new event
func (r *EventRepository) Create(req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.EventUpcoming
	}

	query := fmt.Sprintf(`
		INSERT INTO events (id, name, description, event_date, location, images, lineup, status, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, eventColumns)

	now := time.Now()
	event, err := scanEvent(r.db.QueryRow(
		query,
		uuid.NewString(),
		req.Name,
		req.Description,
		req.EventDate,
		req.Location,
		pq.Array(req.Images),
		pq.Array(req.Lineup),
		status,
		req.Featured,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// Update updates an event
func (r *EventRepository) Update(id string, req *models.EventUpdateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE events
		SET name = $2, description = $3, event_date = $4, location = $5, images = $6, lineup = $7, status = $8, featured = $9, updated_at = $10
		WHERE id = $1
		RETURNING %s`, eventColumns)

	event, err := scanEvent(r.db.QueryRow(
		query,
		id,
		req.Name,
		req.Description,
		req.EventDate,
		req.Location,
		pq.Array(req.Images),
		pq.Array(req.Lineup),
		req.Status,
		req.Featured,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// Delete removes an event and its ticket types
func (r *EventRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return models.ErrEventNotFound
	}

	return nil
}
