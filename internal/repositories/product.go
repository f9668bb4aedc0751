package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"sesotho-storefront/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductRepository handles product data operations
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductFilters represents filters for product listing
type ProductFilters struct {
	Category   string   // Equality filter on category
	Categories []string // Set-membership filter on category
	Featured   *bool    // Filter by featured flag
	Limit      int      // Number of results to return
	SortBy     string   // "created_at", "price", "name"
	SortDesc   bool     // Sort in descending order
}

const productColumns = `id, name, description, price, images, category, sizes, stock, featured, created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	product := &models.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		pq.Array(&product.Images),
		&product.Category,
		pq.Array(&product.Sizes),
		&product.Stock,
		&product.Featured,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// List retrieves products matching the given filters
func (r *ProductRepository) List(filters ProductFilters) ([]*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE 1=1", productColumns)
	args := []interface{}{}
	argIndex := 1

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, filters.Category)
		argIndex++
	}

	if len(filters.Categories) > 0 {
		query += fmt.Sprintf(" AND category = ANY($%d)", argIndex)
		args = append(args, pq.Array(filters.Categories))
		argIndex++
	}

	if filters.Featured != nil {
		query += fmt.Sprintf(" AND featured = $%d", argIndex)
		args = append(args, *filters.Featured)
		argIndex++
	}

	sortBy := "created_at"
	switch filters.SortBy {
	case "price", "name", "created_at":
		sortBy = filters.SortBy
	}
	direction := "ASC"
	if filters.SortDesc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortBy, direction)

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filters.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)

	product, err := scanProduct(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// Create creates a new product
func (r *ProductRepository) Create(req *models.ProductCreateRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO products (id, name, description, price, images, category, sizes, stock, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, productColumns)

	now := time.Now()
	product, err := scanProduct(r.db.QueryRow(
		query,
		uuid.NewString(),
		req.Name,
		req.Description,
		req.Price,
		pq.Array(req.Images),
		req.Category,
		pq.Array(req.Sizes),
		req.Stock,
		req.Featured,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// Update updates a product
func (r *ProductRepository) Update(id string, req *models.ProductUpdateRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE products
		SET name = $2, description = $3, price = $4, images = $5, category = $6, sizes = $7, stock = $8, featured = $9, updated_at = $10
		WHERE id = $1
		RETURNING %s`, productColumns)

	product, err := scanProduct(r.db.QueryRow(
		query,
		id,
		req.Name,
		req.Description,
		req.Price,
		pq.Array(req.Images),
		req.Category,
		pq.Array(req.Sizes),
		req.Stock,
		req.Featured,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product
func (r *ProductRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return models.ErrProductNotFound
	}

	return nil
}
