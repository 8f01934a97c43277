package models

import "time"

// PropertyImage tracks a single listing photo with its display position.
// The parent Property also carries the denormalized URL array.
type PropertyImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PropertyID   uint      `gorm:"index;not null" json:"property_id"`
	ImageURL     string    `gorm:"type:varchar(512);not null" json:"image_url"`
	DisplayOrder int       `gorm:"not null" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
