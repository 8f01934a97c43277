package repository

import (
	"github.com/AndikaSaputra/RumahLink/app/models"
	"gorm.io/gorm"
)

// adminLogRepository implements the AdminLogRepository interface
type adminLogRepository struct {
	db *gorm.DB
}

// NewAdminLogRepository creates a new admin log repository instance
func NewAdminLogRepository(db *gorm.DB) AdminLogRepository {
	return &adminLogRepository{db: db}
}

// Create appends an audit entry. Entries are never updated or deleted.
func (r *adminLogRepository) Create(entry *models.AdminLog) error {
	return r.db.Create(entry).Error
}

// List retrieves audit entries, newest first
func (r *adminLogRepository) List(offset, limit int) ([]models.AdminLog, error) {
	var entries []models.AdminLog
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByAdmin retrieves one admin's audit entries, newest first
func (r *adminLogRepository) ListByAdmin(adminID uint, offset, limit int) ([]models.AdminLog, error) {
	var entries []models.AdminLog
	err := r.db.Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
