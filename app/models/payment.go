package models

import "time"

const (
	PAYMENT_STATUS_PENDING   = "pending"
	PAYMENT_STATUS_SUCCESS   = "success"
	PAYMENT_STATUS_FAILED    = "failed"
	PAYMENT_STATUS_CANCELLED = "cancelled"
)

// DefaultSubscriptionDays is granted when an order does not specify a period.
const DefaultSubscriptionDays = 30

// Payment is one premium-subscription purchase. Created pending at order
// time; transitions exactly once, on webhook receipt, to a terminal status.
type Payment struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"index;not null" json:"user_id"`
	User             *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Amount           int64      `gorm:"not null" json:"amount"` // IDR
	Currency         string     `gorm:"type:varchar(3);default:'IDR'" json:"currency"`
	PaymentMethod    string     `gorm:"type:varchar(50);default:null" json:"payment_method,omitempty"`
	TransactionID    string     `gorm:"type:varchar(100);uniqueIndex;default:null" json:"transaction_id,omitempty"`
	OrderID          string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"order_id"`
	Status           string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	SubscriptionDays int        `gorm:"default:30" json:"subscription_days"`
	Description      string     `gorm:"type:text" json:"description,omitempty"`
	CompletedAt      *time.Time `gorm:"type:timestamp;default:null" json:"completed_at,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsTerminal reports whether the payment has already reached a final status.
func (p *Payment) IsTerminal() bool {
	return p.Status != PAYMENT_STATUS_PENDING
}
