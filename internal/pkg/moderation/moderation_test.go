package moderation

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

type fakeRepo struct {
	properties map[uint]*models.Property
	users      map[uint]*models.User
	logs       []*models.AdminLog
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		properties: map[uint]*models.Property{},
		users:      map[uint]*models.User{},
	}
}

func (f *fakeRepo) GetPropertyByID(id uint) (*models.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) UpdatePropertyStatus(id uint, status string) error {
	if p, ok := f.properties[id]; ok {
		p.Status = status
	}
	return nil
}

func (f *fakeRepo) GetUserByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) UpdateUserRole(id uint, role string) error {
	if u, ok := f.users[id]; ok {
		u.Role = role
	}
	return nil
}

func (f *fakeRepo) CreateAdminLog(entry *models.AdminLog) error {
	f.logs = append(f.logs, entry)
	return nil
}

func TestApproveProperty(t *testing.T) {
	repo := newFakeRepo()
	repo.properties[10] = &models.Property{ID: 10, Title: "Rumah Minimalis", Status: models.PROPERTY_STATUS_DRAFT}
	svc := NewService(repo)

	property, err := svc.ApproveProperty(context.Background(), 1, 10, "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if property.Status != models.PROPERTY_STATUS_PUBLISHED {
		t.Fatalf("expected published, got %q", property.Status)
	}
	if repo.properties[10].Status != models.PROPERTY_STATUS_PUBLISHED {
		t.Fatalf("expected status persisted")
	}
	if len(repo.logs) != 1 || repo.logs[0].Action != models.ADMIN_ACTION_APPROVE_PROPERTY {
		t.Fatalf("expected one approve audit entry, got %+v", repo.logs)
	}
}

func TestApproveProperty_RestoresArchived(t *testing.T) {
	repo := newFakeRepo()
	repo.properties[10] = &models.Property{ID: 10, Status: models.PROPERTY_STATUS_ARCHIVED}
	svc := NewService(repo)

	property, err := svc.ApproveProperty(context.Background(), 1, 10, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if property.Status != models.PROPERTY_STATUS_PUBLISHED {
		t.Fatalf("expected archived listing to be restorable, got %q", property.Status)
	}
}

func TestApproveProperty_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	if _, err := svc.ApproveProperty(context.Background(), 1, 404, ""); !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestRejectProperty(t *testing.T) {
	repo := newFakeRepo()
	repo.properties[10] = &models.Property{ID: 10, Title: "Rumah Minimalis", Status: models.PROPERTY_STATUS_DRAFT}
	svc := NewService(repo)

	property, err := svc.RejectProperty(context.Background(), 1, 10, "incomplete photos", "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if property.Status != models.PROPERTY_STATUS_ARCHIVED {
		t.Fatalf("expected archived, got %q", property.Status)
	}
	if len(repo.logs) != 1 || repo.logs[0].Action != models.ADMIN_ACTION_REJECT_PROPERTY {
		t.Fatalf("expected one reject audit entry, got %+v", repo.logs)
	}
}

func TestPromoteToSeller_SetsRole(t *testing.T) {
	repo := newFakeRepo()
	repo.users[5] = &models.User{ID: 5, Name: "budi", Role: models.ROLE_USER}
	svc := NewService(repo)

	user, err := svc.PromoteToSeller(context.Background(), 1, 5, "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != models.ROLE_SELLER {
		t.Fatalf("expected seller role, got %q", user.Role)
	}
	if repo.users[5].Role != models.ROLE_SELLER {
		t.Fatalf("expected role persisted")
	}
	if len(repo.logs) != 1 || repo.logs[0].Action != models.ADMIN_ACTION_PROMOTE_TO_SELLER {
		t.Fatalf("expected one promote audit entry, got %+v", repo.logs)
	}
}

func TestPromoteToSeller_KeepsAdminRole(t *testing.T) {
	repo := newFakeRepo()
	repo.users[5] = &models.User{ID: 5, Name: "root", Role: models.ROLE_ADMIN}
	svc := NewService(repo)

	user, err := svc.PromoteToSeller(context.Background(), 1, 5, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != models.ROLE_ADMIN {
		t.Fatalf("expected admin role kept, got %q", user.Role)
	}
}

func TestPromoteToSeller_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	if _, err := svc.PromoteToSeller(context.Background(), 1, 404, ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
