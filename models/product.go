package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingProductID = errors.New("product id is required")
	ErrNegativePrice    = errors.New("product price cannot be negative")
)

// Product is the catalog snapshot embedded in a cart line item. The price is
// frozen when the item enters the cart; later catalog changes do not touch it.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Category string          `json:"category,omitempty"`
}

// ProductPayload is the shape product data arrives in from clients and the
// remote catalog. The catalog historically exposed both "id" and "_id";
// Normalize folds them into the single canonical id before anything is stored.
type ProductPayload struct {
	ID       string          `json:"id"`
	LegacyID string          `json:"_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}

func (p ProductPayload) Normalize() (Product, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = strings.TrimSpace(p.LegacyID)
	}
	if id == "" {
		return Product{}, ErrMissingProductID
	}
	if p.Price.IsNegative() {
		return Product{}, ErrNegativePrice
	}

	return Product{
		ID:       id,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
	}, nil
}
