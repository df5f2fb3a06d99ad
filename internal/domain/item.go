package domain

import "time"

// Item is a priced line read from an order. A nil Price means the field was absent.
type Item struct {
	SKU   string   `json:"sku"`
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// Order groups the customer and the items being checked out.
type Order struct {
	User  *User
	Items []Item
}

// Receipt captures the outcome of a checkout.
type Receipt struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Total     float64   `json:"total"`
	Counted   int       `json:"counted"`
	Excluded  int       `json:"excluded"`
	Missing   int       `json:"missing"`
	CreatedAt time.Time `json:"created_at"`
}
