package handler

import (
	"greencart/internal/domain/entity"

	"github.com/google/uuid"
)

// UserView is the public shape of a user. The password hash is never part of it.
type UserView struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	CartItems map[string]int `json:"cartItems"`
	Addresses []AddressView  `json:"addresses"`
}

// AddressView is the public shape of an address.
type AddressView struct {
	ID        string `json:"_id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// ProductView is the public shape of a catalog product.
type ProductView struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description []string `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	OfferPrice  float64  `json:"offerPrice"`
	Images      []string `json:"image"`
	InStock     bool     `json:"inStock"`
}

// sessionUserView is returned by register and login, which only echo the identity.
type sessionUserView struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func toUserView(u *entity.User) UserView {
	cart := u.CartItems.Clone()

	return UserView{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CartItems: cart,
		Addresses: toAddressViews(u.Addresses),
	}
}

func toAddressViews(addresses []*entity.Address) []AddressView {
	views := make([]AddressView, 0, len(addresses))
	for _, a := range addresses {
		view := AddressView{
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
			Street:    a.Street,
			City:      a.City,
			State:     a.State,
			Zipcode:   a.Zipcode,
			Country:   a.Country,
			Phone:     a.Phone,
		}
		if a.ID != uuid.Nil {
			view.ID = a.ID.String()
		}
		views = append(views, view)
	}

	return views
}

func (v *AddressView) toEntity() *entity.Address {
	return &entity.Address{
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
		Street:    v.Street,
		City:      v.City,
		State:     v.State,
		Zipcode:   v.Zipcode,
		Country:   v.Country,
		Phone:     v.Phone,
	}
}

func toProductViews(products []entity.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price,
			OfferPrice:  p.OfferPrice,
			Images:      p.Images,
			InStock:     p.InStock,
		})
	}

	return views
}
