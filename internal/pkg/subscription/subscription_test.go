package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

type fakeRepo struct {
	users   map[uint]*models.User
	updates []updateCall
}

type updateCall struct {
	userID    uint
	status    string
	expiresAt *time.Time
	isPremium bool
}

func (f *fakeRepo) GetUserByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) UpdateSubscription(userID uint, status string, expiresAt *time.Time, isPremium bool) error {
	f.updates = append(f.updates, updateCall{userID, status, expiresAt, isPremium})
	if u, ok := f.users[userID]; ok {
		u.SubscriptionStatus = status
		u.SubscriptionExpiresAt = expiresAt
		u.IsPremium = isPremium
	}
	return nil
}

func newTestService(repo Repository, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGrant(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{users: map[uint]*models.User{
		7: {ID: 7, SubscriptionStatus: models.SUBSCRIPTION_FREE},
	}}
	svc := newTestService(repo, now)

	user, err := svc.Grant(context.Background(), 7, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.SubscriptionStatus != models.SUBSCRIPTION_ACTIVE || !user.IsPremium {
		t.Fatalf("expected active premium user, got %+v", user)
	}
	wantExpiry := now.Add(30 * 24 * time.Hour)
	if user.SubscriptionExpiresAt == nil || !user.SubscriptionExpiresAt.Equal(wantExpiry) {
		t.Fatalf("expected expiry %v, got %v", wantExpiry, user.SubscriptionExpiresAt)
	}
	if len(repo.updates) != 1 {
		t.Fatalf("expected one subscription write, got %d", len(repo.updates))
	}
}

func TestGrant_DefaultDays(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{users: map[uint]*models.User{7: {ID: 7}}}
	svc := newTestService(repo, now)

	user, err := svc.Grant(context.Background(), 7, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := now.Add(models.DefaultSubscriptionDays * 24 * time.Hour)
	if !user.SubscriptionExpiresAt.Equal(want) {
		t.Fatalf("expected default %d-day expiry %v, got %v", models.DefaultSubscriptionDays, want, user.SubscriptionExpiresAt)
	}
}

func TestGrant_ExtendsFromNowNotFromPriorExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	prior := now.Add(10 * 24 * time.Hour)
	repo := &fakeRepo{users: map[uint]*models.User{
		7: {ID: 7, SubscriptionStatus: models.SUBSCRIPTION_ACTIVE, SubscriptionExpiresAt: &prior, IsPremium: true},
	}}
	svc := newTestService(repo, now)

	user, err := svc.Grant(context.Background(), 7, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := now.Add(30 * 24 * time.Hour)
	if !user.SubscriptionExpiresAt.Equal(want) {
		t.Fatalf("expected window restart from now (%v), got %v", want, user.SubscriptionExpiresAt)
	}
}

func TestGrant_UserNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{users: map[uint]*models.User{}}, time.Now())
	if _, err := svc.Grant(context.Background(), 99, 30); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestHandleFailedPayment_LeavesSubscriptionUntouched(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	future := now.Add(5 * 24 * time.Hour)
	repo := &fakeRepo{users: map[uint]*models.User{
		7: {ID: 7, SubscriptionStatus: models.SUBSCRIPTION_ACTIVE, SubscriptionExpiresAt: &future, IsPremium: true},
	}}
	svc := newTestService(repo, now)

	if err := svc.HandleFailedPayment(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.updates) != 0 {
		t.Fatalf("expected no subscription writes on failure, got %d", len(repo.updates))
	}
}

func TestIsPremium(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	repo := &fakeRepo{users: map[uint]*models.User{
		1: {ID: 1, SubscriptionStatus: models.SUBSCRIPTION_ACTIVE, SubscriptionExpiresAt: &future, IsPremium: true},
		2: {ID: 2, SubscriptionStatus: models.SUBSCRIPTION_FREE},
		3: {ID: 3, SubscriptionStatus: models.SUBSCRIPTION_ACTIVE, SubscriptionExpiresAt: &past, IsPremium: true},
	}}
	svc := newTestService(repo, now)

	if ok, err := svc.IsPremium(context.Background(), 1); err != nil || !ok {
		t.Fatalf("expected premium for active future expiry, got ok=%v err=%v", ok, err)
	}
	if ok, err := svc.IsPremium(context.Background(), 2); err != nil || ok {
		t.Fatalf("expected non-premium for free user, got ok=%v err=%v", ok, err)
	}

	// Stale active row: gate refuses and downgrades lazily.
	if ok, err := svc.IsPremium(context.Background(), 3); err != nil || ok {
		t.Fatalf("expected non-premium for stale active row, got ok=%v err=%v", ok, err)
	}
	if len(repo.updates) != 1 {
		t.Fatalf("expected one lazy downgrade write, got %d", len(repo.updates))
	}
	if repo.updates[0].status != models.SUBSCRIPTION_EXPIRED || repo.updates[0].isPremium {
		t.Fatalf("expected downgrade to expired, got %+v", repo.updates[0])
	}
}

func TestIsPremium_UserNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{users: map[uint]*models.User{}}, time.Now())
	if _, err := svc.IsPremium(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
