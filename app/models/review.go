package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Review is a buyer rating on a listing.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null" json:"property_id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Rating     int       `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Review) Validate() error {
	v := validator.New()

	return v.Struct(r)
}
