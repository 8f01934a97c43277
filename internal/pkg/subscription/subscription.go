// Package subscription derives and updates a user's premium-access window
// from payment outcomes and gates premium-only operations.
package subscription

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

// ErrUserNotFound is returned when the subject user does not exist.
var ErrUserNotFound = errors.New("user not found")

// Repository provides the DB operations used by the subscription service.
type Repository interface {
	GetUserByID(id uint) (*models.User, error)
	UpdateSubscription(userID uint, status string, expiresAt *time.Time, isPremium bool) error
}

// Service manages the subscription state machine.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a subscription service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewServiceFromDB creates a subscription service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// Grant activates the user's subscription for the given number of days,
// counted from now. A repeated grant restarts the window from now; remaining
// days of a prior window are not stacked.
func (s *Service) Grant(ctx context.Context, userID uint, days int) (*models.User, error) {
	_ = ctx
	if days <= 0 {
		days = models.DefaultSubscriptionDays
	}
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	expiresAt := s.now().Add(time.Duration(days) * 24 * time.Hour)
	if err := s.repo.UpdateSubscription(userID, models.SUBSCRIPTION_ACTIVE, &expiresAt, true); err != nil {
		return nil, err
	}

	user.SubscriptionStatus = models.SUBSCRIPTION_ACTIVE
	user.SubscriptionExpiresAt = &expiresAt
	user.IsPremium = true
	return user, nil
}

// HandleFailedPayment records the failure side of the state machine: a failed
// purchase never touches an existing subscription, so this is deliberately a
// no-op on the user row.
func (s *Service) HandleFailedPayment(ctx context.Context, userID uint) error {
	_ = ctx
	_ = userID
	return nil
}

// IsPremium reports whether the user holds premium access right now. The
// expiry is always re-checked against the clock; a stale active row is
// lazily downgraded to expired on first observation.
func (s *Service) IsPremium(ctx context.Context, userID uint) (bool, error) {
	_ = ctx
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	now := s.now()
	if user.HasActiveSubscription(now) {
		return true, nil
	}

	if user.SubscriptionStatus == models.SUBSCRIPTION_ACTIVE {
		// Active status with a past (or missing) expiry: downgrade in place.
		if err := s.repo.UpdateSubscription(userID, models.SUBSCRIPTION_EXPIRED, user.SubscriptionExpiresAt, false); err != nil {
			return false, err
		}
	}
	return false, nil
}
