package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

type fakeGate struct {
	premium map[uint]bool
}

func (f *fakeGate) IsPremium(_ context.Context, userID uint) (bool, error) {
	return f.premium[userID], nil
}

type contactKey struct {
	userID, propertyID uint
}

type fakeRepo struct {
	properties map[uint]*models.Property
	requests   map[contactKey]*models.ContactRequest
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		properties: map[uint]*models.Property{},
		requests:   map[contactKey]*models.ContactRequest{},
	}
}

func (f *fakeRepo) GetPropertyByID(id uint) (*models.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeRepo) UpsertViewed(req *models.ContactRequest) (*models.ContactRequest, error) {
	key := contactKey{req.UserID, req.PropertyID}
	if existing, ok := f.requests[key]; ok {
		existing.Status = req.Status
		existing.ViewedAt = req.ViewedAt
		cp := *existing
		return &cp, nil
	}
	cp := *req
	f.requests[key] = &cp
	out := cp
	return &out, nil
}

func setupService() (*Service, *fakeRepo, *fakeGate) {
	repo := newFakeRepo()
	gate := &fakeGate{premium: map[uint]bool{}}
	svc := NewService(repo, gate)
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo, gate
}

func TestRequestContact(t *testing.T) {
	svc, repo, gate := setupService()
	gate.premium[1] = true
	repo.properties[10] = &models.Property{
		ID: 10, UserID: 2, Status: models.PROPERTY_STATUS_PUBLISHED,
		SellerPhone: "0811111111", SellerWhatsapp: "0811111112",
	}

	info, err := svc.RequestContact(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Phone != "0811111111" || info.Whatsapp != "0811111112" {
		t.Fatalf("unexpected contact payload: %+v", info)
	}
	if info.SellerID != 2 {
		t.Fatalf("expected seller id 2, got %d", info.SellerID)
	}

	stored := repo.requests[contactKey{1, 10}]
	if stored == nil || stored.Status != models.CONTACT_STATUS_VIEWED || stored.ViewedAt == nil {
		t.Fatalf("expected stored viewed request, got %+v", stored)
	}
	if stored.SellerPhone != "0811111111" || stored.SellerWhatsapp != "0811111112" {
		t.Fatalf("expected listing contact snapshot, got %+v", stored)
	}
}

func TestRequestContact_NotPremium(t *testing.T) {
	svc, repo, _ := setupService()
	repo.properties[10] = &models.Property{ID: 10, UserID: 2, Status: models.PROPERTY_STATUS_PUBLISHED}

	if _, err := svc.RequestContact(context.Background(), 1, 10); !errors.Is(err, ErrPremiumRequired) {
		t.Fatalf("expected ErrPremiumRequired, got %v", err)
	}
	if len(repo.requests) != 0 {
		t.Fatalf("expected no stored request for non-premium user")
	}
}

func TestRequestContact_PropertyNotFound(t *testing.T) {
	svc, _, gate := setupService()
	gate.premium[1] = true

	if _, err := svc.RequestContact(context.Background(), 1, 404); !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestRequestContact_UnpublishedListing(t *testing.T) {
	svc, repo, gate := setupService()
	gate.premium[1] = true
	// a buyer may unlock contact on a listing that is still awaiting approval
	repo.properties[11] = &models.Property{
		ID: 11, UserID: 2, Status: models.PROPERTY_STATUS_DRAFT,
		SellerPhone: "0811111111", SellerWhatsapp: "0811111112",
	}

	info, err := svc.RequestContact(context.Background(), 1, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Phone != "0811111111" || info.Whatsapp != "0811111112" {
		t.Fatalf("unexpected contact payload: %+v", info)
	}
}

func TestRequestContact_RepeatKeepsSnapshot(t *testing.T) {
	svc, repo, gate := setupService()
	gate.premium[1] = true
	repo.properties[10] = &models.Property{
		ID: 10, UserID: 2, Status: models.PROPERTY_STATUS_PUBLISHED,
		SellerPhone: "0811111111", SellerWhatsapp: "0811111112",
	}

	if _, err := svc.RequestContact(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// seller edits the listing's contact number afterwards
	repo.properties[10].SellerPhone = "0899999999"

	info, err := svc.RequestContact(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Phone != "0811111111" {
		t.Fatalf("expected snapshotted phone, got %q", info.Phone)
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected single row per (user, property), got %d", len(repo.requests))
	}
}
