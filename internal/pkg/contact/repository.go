package contact

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a contact repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := r.db.First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// UpsertViewed inserts a contact request or, when the (user, property) pair
// already exists, refreshes status and viewed_at while keeping the stored
// seller contact snapshot. The unique index makes concurrent first requests
// collapse into a single row.
func (r *gormRepository) UpsertViewed(req *models.ContactRequest) (*models.ContactRequest, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "viewed_at"}),
	}).Create(req).Error
	if err != nil {
		return nil, err
	}

	var stored models.ContactRequest
	err = r.db.Where("user_id = ? AND property_id = ?", req.UserID, req.PropertyID).First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
