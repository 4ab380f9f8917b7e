package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. The cart snapshot is stored as a jsonb object.
type UserModel struct {
	ID           uuid.UUID                          `gorm:"type:uuid;primary_key"`
	Email        string                             `gorm:"type:varchar(255);unique;not null"`
	Name         string                             `gorm:"type:varchar(100);not null"`
	PasswordHash string                             `gorm:"type:varchar(255);not null"`
	CartItems    datatypes.JSONType[map[string]int] `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Addresses []*AddressModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered id when the caller did not provide one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate user id")
	}
	m.ID = id

	return nil
}
