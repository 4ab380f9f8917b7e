package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table owned by the catalog service. It is only read here.
type ProductModel struct {
	ID          string                      `gorm:"type:varchar(64);primary_key"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Description datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Category    string                      `gorm:"type:varchar(100);not null"`
	Price       float64                     `gorm:"type:numeric(12,2);not null"`
	OfferPrice  float64                     `gorm:"type:numeric(12,2);not null"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	InStock     bool                        `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
