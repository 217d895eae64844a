package models

import "time"

// Category is the closed set of product categories the marketplace sells.
type Category string

const (
	CategorySpices     Category = "spices"
	CategoryOils       Category = "oils"
	CategoryFlours     Category = "flours"
	CategoryVegetables Category = "vegetables"
	CategoryGrains     Category = "grains"
)

// Freshness is the supplier-declared freshness tier of a product.
type Freshness string

const (
	FreshnessVeryFresh Freshness = "Very Fresh"
	FreshnessFresh     Freshness = "Fresh"
	FreshnessGood      Freshness = "Good"
)

// Product is a supplier listing. Read-only on the client.
type Product struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          Category  `json:"category"`
	Price             float64   `json:"price"`
	Unit              string    `json:"unit"`
	AvailableQuantity int       `json:"available_quantity"`
	InStock           bool      `json:"in_stock"`
	Freshness         Freshness `json:"freshness"`
	Image             string    `json:"image"`
	Rating            float64   `json:"rating"`
	TotalRatings      int       `json:"total_ratings"`
	Supplier          int64     `json:"supplier"`
	SupplierName      string    `json:"supplier_name"`
	SupplierBusiness  string    `json:"supplier_business"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProductPage is one page of the paginated product listing.
type ProductPage struct {
	Count    int64     `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []Product `json:"results"`
}

// CategoryOption is a category with its display label, as served by the
// categories endpoint.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
