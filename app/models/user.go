package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ROLE_USER   = "user"
	ROLE_ADMIN  = "admin"
	ROLE_SELLER = "seller"
	ROLE_DEMO   = "demo"

	SUBSCRIPTION_FREE      = "free"
	SUBSCRIPTION_ACTIVE    = "active"
	SUBSCRIPTION_EXPIRED   = "expired"
	SUBSCRIPTION_CANCELLED = "cancelled"
)

type User struct {
	ID                    uint           `gorm:"primaryKey" json:"id"`
	Name                  string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=3,max=150"`
	Email                 string         `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin" json:"email" validate:"required,email,min=5,max=200"`
	Password              string         `gorm:"type:text" json:"-" validate:"required,min=6"`
	Phone                 string         `gorm:"type:varchar(20);default:null" json:"phone" validate:"max=20"`
	Whatsapp              string         `gorm:"type:varchar(20);default:null" json:"whatsapp" validate:"max=20"`
	Role                  string         `gorm:"type:varchar(50);default:'user'" json:"role" validate:"oneof=user admin seller demo"`
	SubscriptionStatus    string         `gorm:"type:varchar(50);default:'free'" json:"subscription_status" validate:"oneof=free active expired cancelled"`
	SubscriptionExpiresAt *time.Time     `gorm:"type:timestamp;default:null" json:"subscription_expires_at"`
	IsPremium             bool           `gorm:"default:false" json:"is_premium"`
	Bio                   string         `gorm:"type:text;default:null" json:"bio" validate:"max=1000"`
	Address               string         `gorm:"type:text;default:null" json:"address"`
	City                  string         `gorm:"type:varchar(100);default:null" json:"city" validate:"max=100"`
	Province              string         `gorm:"type:varchar(100);default:null" json:"province" validate:"max=100"`
	PostalCode            string         `gorm:"type:varchar(10);default:null" json:"postal_code" validate:"max=10"`
	LastLoginAt           *time.Time     `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

func CreateUser(name string, email string, password string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:               name,
		Email:              email,
		Password:           pw,
		Role:               ROLE_USER,
		SubscriptionStatus: SUBSCRIPTION_FREE,
	}

	err = u.Validate()
	if err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword
	return nil
}

// HasActiveSubscription reports whether the subscription grants premium access
// at the given instant. The cached IsPremium flag is never trusted on its own;
// the expiry is always re-checked.
func (u *User) HasActiveSubscription(now time.Time) bool {
	if u.SubscriptionStatus != SUBSCRIPTION_ACTIVE {
		return false
	}
	return u.SubscriptionExpiresAt != nil && u.SubscriptionExpiresAt.After(now)
}
