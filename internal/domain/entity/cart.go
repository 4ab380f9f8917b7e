package entity

import (
	"maps"
	"math"
)

// Cart maps product id to quantity. Present keys always hold a quantity of at least one.
type Cart map[string]int

// NewCart returns a copy of items with non-positive quantities dropped.
func NewCart(items map[string]int) Cart {
	cart := make(Cart, len(items))
	for id, qty := range items {
		if qty > 0 {
			cart[id] = qty
		}
	}

	return cart
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}

	return maps.Clone(c)
}

// Add increments the product quantity by one.
func (c Cart) Add(productID string) {
	c[productID]++
}

// SetQuantity sets the product quantity. A non-positive quantity removes the entry.
func (c Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		delete(c, productID)

		return
	}
	c[productID] = quantity
}

// Remove decrements the product quantity by one and reports whether an entry existed.
func (c Cart) Remove(productID string) bool {
	qty, ok := c[productID]
	if !ok {
		return false
	}

	if qty <= 1 {
		delete(c, productID)
	} else {
		c[productID] = qty - 1
	}

	return true
}

// Count returns the total number of units in the cart.
func (c Cart) Count() int {
	total := 0
	for _, qty := range c {
		total += qty
	}

	return total
}

// Amount prices the cart against catalog offer prices. Products missing from the catalog count as zero.
// The total is floored to two decimals, so 59.997 becomes 59.99.
func (c Cart) Amount(catalog Catalog) float64 {
	total := 0.0
	for id, qty := range c {
		product, ok := catalog.Find(id)
		if !ok {
			continue
		}
		total += product.OfferPrice * float64(qty)
	}

	return math.Floor(total*100) / 100
}
