package models

import (
	"errors"
	"strings"
	"time"
)

// Product represents a shop item in the catalog
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       int       `json:"price" db:"price"` // Price in cents
	Images      []string  `json:"images" db:"images"`
	Category    string    `json:"category" db:"category"`
	Sizes       []string  `json:"sizes" db:"sizes"`
	Stock       int       `json:"stock" db:"stock"`
	Featured    bool      `json:"featured" db:"featured"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProductCreateRequest represents the data needed to create a new product
type ProductCreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
}

// ProductUpdateRequest represents the data that can be updated for a product
type ProductUpdateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
}

// Validate validates the product data
func (p *Product) Validate() error {
	if err := validateProductName(p.Name); err != nil {
		return err
	}
	return validateProductPrice(p.Price)
}

// Validate validates product creation data
func (req *ProductCreateRequest) Validate() error {
	if err := validateProductName(req.Name); err != nil {
		return err
	}
	if err := validateProductPrice(req.Price); err != nil {
		return err
	}
	if req.Stock < 0 {
		return errors.New("stock cannot be negative")
	}
	return nil
}

// Validate validates product update data
func (req *ProductUpdateRequest) Validate() error {
	if err := validateProductName(req.Name); err != nil {
		return err
	}
	if err := validateProductPrice(req.Price); err != nil {
		return err
	}
	if req.Stock < 0 {
		return errors.New("stock cannot be negative")
	}
	return nil
}

// HasSize reports whether the product is offered in the given size
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// InStock reports whether the product can be purchased
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// PrimaryImage returns the first image or an empty string
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// PriceInCurrency returns the price in the main currency unit
func (p *Product) PriceInCurrency() float64 {
	return float64(p.Price) / 100.0
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("product name is required")
	}
	if len(name) > 255 {
		return errors.New("product name must be less than 255 characters")
	}
	return nil
}

func validateProductPrice(price int) error {
	if price < 0 {
		return errors.New("price cannot be negative")
	}
	return nil
}
