package repository

import (
	"github.com/AndikaSaputra/RumahLink/app/models"
	"gorm.io/gorm"
)

// DefaultSearchLimit caps unpaginated search requests.
const DefaultSearchLimit = 50

// propertyRepository implements the PropertyRepository interface
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create creates a new property in the database
func (r *propertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// GetByID retrieves a property by its ID
func (r *propertyRepository) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetByUserID retrieves a user's own listings with pagination
func (r *propertyRepository) GetByUserID(userID uint, offset, limit int) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// Update updates an existing property
func (r *propertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}

// Delete soft deletes a property by its ID
func (r *propertyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Property{}, id).Error
}

// List retrieves properties with pagination
func (r *propertyRepository) List(offset, limit int) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// ListByStatus retrieves properties in a given moderation status
func (r *propertyRepository) ListByStatus(status string, offset, limit int) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Where("status = ?", status).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// Search filters published listings. All filters are optional and combine
// with AND; results are newest first.
func (r *propertyRepository) Search(params PropertySearchParams) ([]models.Property, int64, error) {
	query := r.db.Model(&models.Property{}).Where("status = ?", models.PROPERTY_STATUS_PUBLISHED)

	if params.City != "" {
		query = query.Where("LOWER(city) LIKE LOWER(?)", "%"+params.City+"%")
	}
	if params.PropertyType != "" {
		query = query.Where("property_type = ?", params.PropertyType)
	}
	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}
	if params.Bedrooms != nil {
		query = query.Where("bedrooms = ?", *params.Bedrooms)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit <= 0 || limit > DefaultSearchLimit {
		limit = DefaultSearchLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	var properties []models.Property
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// Count returns the total number of properties
func (r *propertyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Property{}).Count(&count).Error
	return count, err
}

// CountByUserID returns the number of listings owned by a user
func (r *propertyRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Property{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// AddViews adds the given delta to the stored view counter
func (r *propertyRepository) AddViews(id uint, delta int64) error {
	return r.db.Model(&models.Property{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta)).Error
}

// ReplaceImages rewrites the ordered per-image rows for a listing
func (r *propertyRepository) ReplaceImages(propertyID uint, urls []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		if len(urls) == 0 {
			return nil
		}
		images := make([]models.PropertyImage, 0, len(urls))
		for i, url := range urls {
			images = append(images, models.PropertyImage{
				PropertyID:   propertyID,
				ImageURL:     url,
				DisplayOrder: i,
			})
		}
		return tx.Create(&images).Error
	})
}

// GetImages returns a listing's photos in display order
func (r *propertyRepository) GetImages(propertyID uint) ([]models.PropertyImage, error) {
	var images []models.PropertyImage
	err := r.db.Where("property_id = ?", propertyID).Order("display_order ASC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
