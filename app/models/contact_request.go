package models

import "time"

const (
	CONTACT_STATUS_PENDING   = "pending"
	CONTACT_STATUS_VIEWED    = "viewed"
	CONTACT_STATUS_CONTACTED = "contacted" // reserved; no transition writes it yet
)

// ContactRequest records one contact disclosure grant per (user, property)
// pair. The seller contact values are snapshotted at grant time; later edits
// to the listing do not rewrite issued requests.
type ContactRequest struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;uniqueIndex:ux_contact_requests_user_property,priority:1" json:"user_id"`
	PropertyID     uint       `gorm:"not null;uniqueIndex:ux_contact_requests_user_property,priority:2" json:"property_id"`
	SellerPhone    string     `gorm:"type:varchar(20);default:null" json:"seller_phone,omitempty"`
	SellerWhatsapp string     `gorm:"type:varchar(20);default:null" json:"seller_whatsapp,omitempty"`
	Status         string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ViewedAt       *time.Time `gorm:"type:timestamp;default:null" json:"viewed_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
