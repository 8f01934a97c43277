package repository

import (
	"github.com/AndikaSaputra/RumahLink/app/models"
	"gorm.io/gorm"
)

// contactRequestRepository implements the ContactRequestRepository interface
type contactRequestRepository struct {
	db *gorm.DB
}

// NewContactRequestRepository creates a new contact request repository instance
func NewContactRequestRepository(db *gorm.DB) ContactRequestRepository {
	return &contactRequestRepository{db: db}
}

// GetByUserID retrieves a user's contact history, newest first
func (r *contactRequestRepository) GetByUserID(userID uint) ([]models.ContactRequest, error) {
	var requests []models.ContactRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// CountByProperty returns how many distinct buyers requested a listing's contact
func (r *contactRequestRepository) CountByProperty(propertyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactRequest{}).Where("property_id = ?", propertyID).Count(&count).Error
	return count, err
}
