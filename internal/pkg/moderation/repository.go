package moderation

import (
	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a moderation repository backed by GORM.
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

func (r *gormRepository) UpdatePropertyStatus(id uint, status string) error {
	return r.db.Model(&models.Property{}).Where("id = ?", id).Update("status", status).Error
}

func (r *gormRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) UpdateUserRole(id uint, role string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role).Error
}

func (r *gormRepository) CreateAdminLog(entry *models.AdminLog) error {
	return r.db.Create(entry).Error
}
