package models

import (
	"encoding/json"
	"time"
)

const (
	ADMIN_ACTION_APPROVE_PROPERTY  = "approve_property"
	ADMIN_ACTION_REJECT_PROPERTY   = "reject_property"
	ADMIN_ACTION_PROMOTE_TO_SELLER = "promote_to_seller"

	ADMIN_TARGET_USER     = "user"
	ADMIN_TARGET_PROPERTY = "property"
	ADMIN_TARGET_PAYMENT  = "payment"
)

// AdminLog is an append-only audit entry. Rows are never updated or deleted.
type AdminLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AdminID    uint      `gorm:"index;not null" json:"admin_id"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	TargetType string    `gorm:"type:varchar(50);default:null" json:"target_type,omitempty"`
	TargetID   uint      `gorm:"default:null" json:"target_id,omitempty"`
	Details    string    `gorm:"column:details;type:longtext" json:"details,omitempty"`
	IPAddress  string    `gorm:"type:varchar(45);default:null" json:"ip_address,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// NewAdminLog builds an audit entry, marshalling the free-form detail payload.
func NewAdminLog(adminID uint, action, targetType string, targetID uint, details map[string]interface{}, ip string) *AdminLog {
	entry := &AdminLog{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		IPAddress:  ip,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = string(raw)
		}
	}
	return entry
}
