package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddThenRemoveRestoresCount(t *testing.T) {
	cart := Cart{"p2": 3}
	before := cart.Count()

	cart.Add("p1")
	assert.Equal(t, before+1, cart.Count())

	assert.True(t, cart.Remove("p1"))
	assert.Equal(t, before, cart.Count())
	assert.NotContains(t, cart, "p1")
}

func TestCart_AddAndRemoveNTimesEmpties(t *testing.T) {
	cart := Cart{}
	const n = 5

	for range n {
		cart.Add("p1")
	}
	assert.Equal(t, n, cart["p1"])

	for range n {
		assert.True(t, cart.Remove("p1"))
	}
	assert.Empty(t, cart)
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	cart := Cart{"p1": 1}

	assert.False(t, cart.Remove("missing"))
	assert.Equal(t, Cart{"p1": 1}, cart)
	assert.NotContains(t, cart, "missing")
}

func TestCart_SetQuantity(t *testing.T) {
	cart := Cart{}

	cart.SetQuantity("p1", 4)
	assert.Equal(t, 4, cart["p1"])

	cart.SetQuantity("p1", 0)
	assert.NotContains(t, cart, "p1")

	cart.SetQuantity("p2", -3)
	assert.Empty(t, cart)
}

func TestCart_Amount(t *testing.T) {
	tests := []struct {
		name    string
		cart    Cart
		catalog Catalog
		want    float64
	}{
		{
			name:    "floors instead of rounding",
			cart:    Cart{"p1": 3},
			catalog: Catalog{{ID: "p1", OfferPrice: 19.999}},
			want:    59.99,
		},
		{
			name:    "unknown products contribute zero",
			cart:    Cart{"p1": 2, "ghost": 10},
			catalog: Catalog{{ID: "p1", OfferPrice: 1.5}},
			want:    3,
		},
		{
			name:    "sums across products",
			cart:    Cart{"p1": 1, "p2": 2},
			catalog: Catalog{{ID: "p1", OfferPrice: 10}, {ID: "p2", OfferPrice: 2.25}},
			want:    14.5,
		},
		{
			name: "empty cart",
			cart: Cart{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cart.Amount(tt.catalog))
		})
	}
}

func TestNewCart_DropsNonPositive(t *testing.T) {
	cart := NewCart(map[string]int{"a": 2, "b": 0, "c": -1})

	assert.Equal(t, Cart{"a": 2}, cart)
}

func TestCart_CloneIsIndependent(t *testing.T) {
	cart := Cart{"a": 1}
	clone := cart.Clone()
	clone.Add("a")

	assert.Equal(t, 1, cart["a"])
	assert.Equal(t, Cart{}, Cart(nil).Clone())
}
