package subscription

import (
	"time"

	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a subscription repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) UpdateSubscription(userID uint, status string, expiresAt *time.Time, isPremium bool) error {
	updates := map[string]interface{}{
		"subscription_status":     status,
		"subscription_expires_at": expiresAt,
		"is_premium":              isPremium,
	}
	return r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}
