package database

import (
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetDB returns the global database handle set up by SetupDatabase.
func GetDB() *gorm.DB {
	return DB
}

// SetDB overrides the global handle, used by tests with a sqlmock/sqlite handle.
func SetDB(db *gorm.DB) {
	DB = db
}
