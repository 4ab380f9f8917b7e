package entity

import "time"

// Product is a catalog entry as seen by the storefront. The catalog itself is owned elsewhere.
type Product struct {
	ID          string
	Name        string
	Description []string
	Category    string
	Price       float64
	OfferPrice  float64
	Images      []string
	InStock     bool
	CreatedAt   time.Time
}

// Catalog is a snapshot of products used to price a cart.
type Catalog []Product

// Find returns the product with the given id.
func (c Catalog) Find(id string) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}
