// Package moderation implements the admin actions on listings and users and
// writes the append-only audit trail for each of them.
package moderation

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

var (
	// ErrPropertyNotFound is returned when the target listing does not exist.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrUserNotFound is returned when the target user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Repository provides the DB operations used by the moderation service.
type Repository interface {
	GetPropertyByID(id uint) (*models.Property, error)
	UpdatePropertyStatus(id uint, status string) error
	GetUserByID(id uint) (*models.User, error)
	UpdateUserRole(id uint, role string) error
	CreateAdminLog(entry *models.AdminLog) error
}

// Service executes admin moderation actions.
type Service struct {
	repo Repository
}

// NewService creates a moderation service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a moderation service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// ApproveProperty publishes a listing. Approval is idempotent and applies
// regardless of the listing's current status, so an archived listing can be
// restored through the same action.
func (s *Service) ApproveProperty(ctx context.Context, adminID, propertyID uint, ip string) (*models.Property, error) {
	_ = ctx
	property, err := s.repo.GetPropertyByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if err := s.repo.UpdatePropertyStatus(propertyID, models.PROPERTY_STATUS_PUBLISHED); err != nil {
		return nil, err
	}
	property.Status = models.PROPERTY_STATUS_PUBLISHED

	s.audit(models.NewAdminLog(adminID, models.ADMIN_ACTION_APPROVE_PROPERTY, models.ADMIN_TARGET_PROPERTY, propertyID, map[string]interface{}{
		"title": property.Title,
	}, ip))

	return property, nil
}

// RejectProperty archives a listing with an optional reason.
func (s *Service) RejectProperty(ctx context.Context, adminID, propertyID uint, reason, ip string) (*models.Property, error) {
	_ = ctx
	property, err := s.repo.GetPropertyByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if err := s.repo.UpdatePropertyStatus(propertyID, models.PROPERTY_STATUS_ARCHIVED); err != nil {
		return nil, err
	}
	property.Status = models.PROPERTY_STATUS_ARCHIVED

	s.audit(models.NewAdminLog(adminID, models.ADMIN_ACTION_REJECT_PROPERTY, models.ADMIN_TARGET_PROPERTY, propertyID, map[string]interface{}{
		"title":  property.Title,
		"reason": reason,
	}, ip))

	return property, nil
}

// PromoteToSeller sets the target user's role to seller. Promoting an admin
// would demote them, so admin accounts are left untouched.
func (s *Service) PromoteToSeller(ctx context.Context, adminID, userID uint, ip string) (*models.User, error) {
	_ = ctx
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Role != models.ROLE_ADMIN {
		if err := s.repo.UpdateUserRole(userID, models.ROLE_SELLER); err != nil {
			return nil, err
		}
		user.Role = models.ROLE_SELLER
	}

	s.audit(models.NewAdminLog(adminID, models.ADMIN_ACTION_PROMOTE_TO_SELLER, models.ADMIN_TARGET_USER, userID, map[string]interface{}{
		"name": user.Name,
		"role": user.Role,
	}, ip))

	return user, nil
}

// audit persists the log entry. A failed audit write never rolls back the
// moderation action itself.
func (s *Service) audit(entry *models.AdminLog) {
	if err := s.repo.CreateAdminLog(entry); err != nil {
		log.Printf("[Moderation] Failed to write admin log: %v", err)
	}
}
