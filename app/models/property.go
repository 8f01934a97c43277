package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	PROPERTY_STATUS_DRAFT     = "draft"
	PROPERTY_STATUS_PUBLISHED = "published"
	PROPERTY_STATUS_SOLD      = "sold"
	PROPERTY_STATUS_ARCHIVED  = "archived"

	PROPERTY_TYPE_HOUSE      = "house"
	PROPERTY_TYPE_APARTMENT  = "apartment"
	PROPERTY_TYPE_LAND       = "land"
	PROPERTY_TYPE_COMMERCIAL = "commercial"
	PROPERTY_TYPE_TOWNHOUSE  = "townhouse"
)

// MinListingImages is the minimum number of photos a listing must carry at
// creation time.
const MinListingImages = 5

type Property struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"index;not null" json:"user_id"`
	User         *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title        string  `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=5,max=255"`
	Description  string  `gorm:"type:text" json:"description"`
	PropertyType string  `gorm:"type:varchar(20);not null;index" json:"property_type" validate:"oneof=house apartment land commercial townhouse"`
	Address      string  `gorm:"type:text;not null" json:"address" validate:"required"`
	City         string  `gorm:"type:varchar(100);not null;index" json:"city" validate:"required,max=100"`
	Province     string  `gorm:"type:varchar(100);not null" json:"province" validate:"required,max=100"`
	PostalCode   string  `gorm:"type:varchar(10);default:null" json:"postal_code" validate:"max=10"`
	Latitude     *float64 `gorm:"type:decimal(10,8);default:null" json:"latitude,omitempty"`
	Longitude    *float64 `gorm:"type:decimal(11,8);default:null" json:"longitude,omitempty"`
	Bedrooms     *int    `gorm:"default:null" json:"bedrooms,omitempty"`
	Bathrooms    *int    `gorm:"default:null" json:"bathrooms,omitempty"`
	LandSize     *int    `gorm:"default:null" json:"land_size,omitempty"`     // m²
	BuildingSize *int    `gorm:"default:null" json:"building_size,omitempty"` // m²
	YearBuilt    *int    `gorm:"default:null" json:"year_built,omitempty"`
	Price        int64   `gorm:"not null;index" json:"price" validate:"required,gt=0"` // smallest currency unit (IDR)
	Currency     string  `gorm:"type:varchar(3);default:'IDR'" json:"currency"`
	Status       string  `gorm:"type:varchar(20);default:'draft';index" json:"status" validate:"oneof=draft published sold archived"`
	// Denormalized JSON array of image URLs; PropertyImage rows carry order.
	ImagesJSON     string         `gorm:"column:images;type:longtext;not null" json:"-"`
	ImageCount     int            `gorm:"default:0" json:"image_count"`
	SellerPhone    string         `gorm:"type:varchar(20);default:null" json:"seller_phone,omitempty" validate:"max=20"`
	SellerWhatsapp string         `gorm:"type:varchar(20);default:null" json:"seller_whatsapp,omitempty" validate:"max=20"`
	Views          int64          `gorm:"default:0" json:"views"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Property) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// Images decodes the denormalized URL array. A corrupted column yields an
// empty slice rather than an error; the per-image table stays authoritative.
func (p *Property) Images() []string {
	if p.ImagesJSON == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(p.ImagesJSON), &urls); err != nil {
		return nil
	}
	return urls
}

// SetImages stores the URL array and keeps ImageCount in sync.
func (p *Property) SetImages(urls []string) error {
	raw, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	p.ImagesJSON = string(raw)
	p.ImageCount = len(urls)
	return nil
}

// IsPublished reports whether the listing is publicly searchable.
func (p *Property) IsPublished() bool {
	return p.Status == PROPERTY_STATUS_PUBLISHED
}

// IsOwnedBy reports whether the given user created this listing.
func (p *Property) IsOwnedBy(userID uint) bool {
	return p.UserID == userID
}
