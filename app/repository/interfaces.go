package repository

import (
	"github.com/AndikaSaputra/RumahLink/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	Search(query string) ([]models.User, error)
}

// PropertySearchParams narrows a published-listing search.
type PropertySearchParams struct {
	City         string
	PropertyType string
	MinPrice     *int64
	MaxPrice     *int64
	Bedrooms     *int
	Offset       int
	Limit        int
}

// PropertyRepository defines the interface for listing-related database operations
type PropertyRepository interface {
	Create(property *models.Property) error
	GetByID(id uint) (*models.Property, error)
	GetByUserID(userID uint, offset, limit int) ([]models.Property, error)
	Update(property *models.Property) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Property, error)
	ListByStatus(status string, offset, limit int) ([]models.Property, error)
	Search(params PropertySearchParams) ([]models.Property, int64, error)
	Count() (int64, error)
	CountByUserID(userID uint) (int64, error)
	AddViews(id uint, delta int64) error
	ReplaceImages(propertyID uint, urls []string) error
	GetImages(propertyID uint) ([]models.PropertyImage, error)
}

// PaymentRepository defines the interface for payment-related database operations
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByOrderID(orderID string) (*models.Payment, error)
	GetByUserID(userID uint, offset, limit int) ([]models.Payment, error)
	Update(payment *models.Payment) error
	Count() (int64, error)
}

// ReviewRepository defines the interface for review-related database operations
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByPropertyID(propertyID uint, offset, limit int) ([]models.Review, error)
	AverageRating(propertyID uint) (float64, int64, error)
}

// ContactRequestRepository defines the interface for contact-history operations
type ContactRequestRepository interface {
	GetByUserID(userID uint) ([]models.ContactRequest, error)
	CountByProperty(propertyID uint) (int64, error)
}

// AdminLogRepository defines the interface for audit-log operations
type AdminLogRepository interface {
	Create(entry *models.AdminLog) error
	List(offset, limit int) ([]models.AdminLog, error)
	ListByAdmin(adminID uint, offset, limit int) ([]models.AdminLog, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User           UserRepository
	Property       PropertyRepository
	Payment        PaymentRepository
	Review         ReviewRepository
	ContactRequest ContactRequestRepository
	AdminLog       AdminLogRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:           NewUserRepository(db),
		Property:       NewPropertyRepository(db),
		Payment:        NewPaymentRepository(db),
		Review:         NewReviewRepository(db),
		ContactRequest: NewContactRequestRepository(db),
		AdminLog:       NewAdminLogRepository(db),
	}
}
