package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PricePerDay float64   `json:"price_per_day"`
	Stock       int       `json:"stock"`
	Available   bool      `json:"available"`
	CategoryID  *string   `json:"category_id"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateProductInput struct {
	Name        string
	Description string
	PricePerDay float64
	Stock       int
	Available   *bool
	CategoryID  *string
	ImageURL    string
}

type ProductFilter struct {
	CategoryID    string
	OnlyAvailable bool
}

// Availability is a point-in-time snapshot of units free on one calendar day.
// Degraded means the committed-units query could not be evaluated and Units
// fell back to the product's total stock; callers must not present a degraded
// value as confirmed.
type Availability struct {
	ProductID string `json:"product_id"`
	Date      string `json:"date"`
	Units     int    `json:"units"`
	Degraded  bool   `json:"degraded"`
}
