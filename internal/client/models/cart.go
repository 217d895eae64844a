package models

import "time"

// CartItem is one line of a cart. The embedded product is a denormalized
// snapshot taken server-side, not a live reference.
type CartItem struct {
	ID        int64     `json:"id"`
	Product   Product   `json:"product"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Total     float64   `json:"total"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is the server-computed cart aggregate. Every mutating cart call
// returns a fresh snapshot; the client holds no authoritative copy between
// round trips.
type Cart struct {
	ID        int64      `json:"id"`
	User      int64      `json:"user"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
