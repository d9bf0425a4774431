package model

import "time"

const DefaultItemQuantity = 10

// Item is a market product with remaining stock.
type Item struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Cost      int       `json:"cost" db:"cost"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Link      *string   `json:"link,omitempty" db:"link"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// InStock reports whether at least one unit is left.
func (i *Item) InStock() bool {
	return i.Quantity > 0
}

type UpdateItemParams struct {
	Name     *string
	Cost     *int
	Quantity *int
	Link     *string
	ImageURL *string
}
