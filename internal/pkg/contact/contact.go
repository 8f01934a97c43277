// Package contact reveals seller contact details to premium buyers and keeps
// a per-buyer history of revealed listings.
package contact

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

var (
	// ErrPremiumRequired is returned when the requesting user has no active
	// subscription window.
	ErrPremiumRequired = errors.New("premium subscription required")
	// ErrPropertyNotFound is returned when the listing does not exist.
	ErrPropertyNotFound = errors.New("property not found")
)

// PremiumGate decides whether a user currently holds premium access.
type PremiumGate interface {
	IsPremium(ctx context.Context, userID uint) (bool, error)
}

// Repository provides the DB operations used by the contact service.
type Repository interface {
	GetPropertyByID(id uint) (*models.Property, error)
	UpsertViewed(req *models.ContactRequest) (*models.ContactRequest, error)
}

// SellerContact is the revealed contact payload.
type SellerContact struct {
	PropertyID uint   `json:"property_id"`
	SellerID   uint   `json:"seller_id"`
	Phone      string `json:"phone"`
	Whatsapp   string `json:"whatsapp"`
}

// Service handles contact reveal requests.
type Service struct {
	repo Repository
	gate PremiumGate
	now  func() time.Time
}

// NewService creates a contact service.
func NewService(repo Repository, gate PremiumGate) *Service {
	return &Service{repo: repo, gate: gate, now: time.Now}
}

// RequestContact reveals a listing's seller contact details to a premium
// buyer. The pair is snapshotted from the listing's own seller fields at call
// time; repeating the request refreshes the viewed timestamp but keeps the
// snapshot, so history stays stable even when the seller later edits the
// listing. The listing only has to exist, moderation status does not gate the
// reveal.
func (s *Service) RequestContact(ctx context.Context, userID, propertyID uint) (*SellerContact, error) {
	premium, err := s.gate.IsPremium(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !premium {
		return nil, ErrPremiumRequired
	}

	property, err := s.repo.GetPropertyByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	now := s.now()
	stored, err := s.repo.UpsertViewed(&models.ContactRequest{
		UserID:         userID,
		PropertyID:     propertyID,
		Status:         models.CONTACT_STATUS_VIEWED,
		SellerPhone:    property.SellerPhone,
		SellerWhatsapp: property.SellerWhatsapp,
		ViewedAt:       &now,
	})
	if err != nil {
		return nil, err
	}

	return &SellerContact{
		PropertyID: propertyID,
		SellerID:   property.UserID,
		Phone:      stored.SellerPhone,
		Whatsapp:   stored.SellerWhatsapp,
	}, nil
}
