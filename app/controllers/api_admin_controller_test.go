package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AndikaSaputra/RumahLink/app/repository"
)

func TestHandleAPIAdminLogsFilterByAdmin(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	assert.NoError(t, err)
	repository.InitializeFactory(db)

	rows := sqlmock.NewRows([]string{"id", "admin_id", "action"}).
		AddRow(1, 7, "approve_property")
	mock.ExpectQuery("SELECT (.+) FROM `admin_logs` WHERE admin_id = (.+) ORDER BY created_at DESC").
		WithArgs(7, 50).
		WillReturnRows(rows)

	app := fiber.New()
	app.Get("/admin/logs", HandleAPIAdminLogs)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/logs?admin_id=7", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
