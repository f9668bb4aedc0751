package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"sesotho-storefront/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ArtistRepository handles artist data operations
type ArtistRepository struct {
	db *sql.DB
}

// NewArtistRepository creates a new artist repository
func NewArtistRepository(db *sql.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// ArtistFilters represents filters for artist listing
type ArtistFilters struct {
	Featured *bool  // Filter by featured flag
	Genre    string // Equality filter on genre
	Limit    int    // Number of results to return
}

const artistColumns = `id, name, bio, image, gallery, social_links, genre, featured, created_at, updated_at`

func scanArtist(row interface{ Scan(...interface{}) error }) (*models.Artist, error) {
	artist := &models.Artist{}
	var socialLinks []byte
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.Bio,
		&artist.Image,
		pq.Array(&artist.Gallery),
		&socialLinks,
		&artist.Genre,
		&artist.Featured,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(socialLinks) > 0 {
		// Malformed social links are tolerated; the artist renders without them
		_ = json.Unmarshal(socialLinks, &artist.SocialLinks)
	}

	return artist, nil
}

// List retrieves artists matching the given filters
func (r *ArtistRepository) List(filters ArtistFilters) ([]*models.Artist, error) {
	query := fmt.Sprintf("SELECT %s FROM artists WHERE 1=1", artistColumns)
	args := []interface{}{}
	argIndex := 1

	if filters.Featured != nil {
		query += fmt.Sprintf(" AND featured = $%d", argIndex)
		args = append(args, *filters.Featured)
		argIndex++
	}

	if filters.Genre != "" {
		query += fmt.Sprintf(" AND genre = $%d", argIndex)
		args = append(args, filters.Genre)
		argIndex++
	}

	query += " ORDER BY name ASC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filters.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	defer rows.Close()

	var artists []*models.Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, artist)
	}

	return artists, rows.Err()
}

// GetByID retrieves an artist by ID
func (r *ArtistRepository) GetByID(id string) (*models.Artist, error) {
	query := fmt.Sprintf("SELECT %s FROM artists WHERE id = $1", artistColumns)

	artist, err := scanArtist(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}

	return artist, nil
}

// Create creates a new artist
func (r *ArtistRepository) Create(req *models.ArtistCreateRequest) (*models.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	socialLinks, err := json.Marshal(req.SocialLinks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode social links: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO artists (id, name, bio, image, gallery, social_links, genre, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, artistColumns)

	now := time.Now()
	artist, err := scanArtist(r.db.QueryRow(
		query,
		uuid.NewString(),
		req.Name,
		req.Bio,
		req.Image,
		pq.Array(req.Gallery),
		socialLinks,
		req.Genre,
		req.Featured,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	return artist, nil
}

// Update updates an artist
func (r *ArtistRepository) Update(id string, req *models.ArtistUpdateRequest) (*models.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	socialLinks, err := json.Marshal(req.SocialLinks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode social links: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE artists
		SET name = $2, bio = $3, image = $4, gallery = $5, social_links = $6, genre = $7, featured = $8, updated_at = $9
		WHERE id = $1
		RETURNING %s`, artistColumns)

	artist, err := scanArtist(r.db.QueryRow(
		query,
		id,
		req.Name,
		req.Bio,
		req.Image,
		pq.Array(req.Gallery),
		socialLinks,
		req.Genre,
		req.Featured,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	return artist, nil
}
