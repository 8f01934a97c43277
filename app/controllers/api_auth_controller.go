package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
	"github.com/AndikaSaputra/RumahLink/app/repository"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/session"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/usercontext"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleAPIRegister creates a new account and opens a session for it.
func HandleAPIRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user, err := models.CreateUser(strings.TrimSpace(req.Name), req.Email, req.Password)
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	user.Phone = strings.TrimSpace(req.Phone)
	user.Whatsapp = strings.TrimSpace(req.Whatsapp)

	repo := repository.GetGlobalFactory().GetUserRepository()
	if existing, err := repo.GetByEmail(user.Email); err == nil && existing != nil {
		return errorJSON(c, fiber.StatusConflict, "conflict", "Email already registered")
	}
	if err := repo.Create(user); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create user")
	}

	if err := openSession(c, user); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(userResponse(user))
}

// HandleAPILogin verifies credentials and opens a session.
func HandleAPILogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Invalid email or password")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user")
	}
	if !user.CheckPassword(req.Password) {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Invalid email or password")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := repo.Update(user); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update user")
	}

	if err := openSession(c, user); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create session")
	}

	return c.JSON(userResponse(user))
}

// HandleAPILogout destroys the current session.
func HandleAPILogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to destroy session")
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleAPIUserMe returns account information for the authenticated user.
func HandleAPIUserMe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "User not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user")
	}

	propertyCount, _ := repository.GetGlobalFactory().GetPropertyRepository().CountByUserID(user.ID)

	response := userResponse(user)
	response["stats"] = fiber.Map{
		"properties": fiber.Map{"count": propertyCount},
	}
	return c.JSON(response)
}

func openSession(c *fiber.Ctx, user *models.User) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyUserRole, user.Role)
	return sess.Save()
}

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":                      user.ID,
		"name":                    user.Name,
		"email":                   user.Email,
		"phone":                   user.Phone,
		"whatsapp":                user.Whatsapp,
		"role":                    user.Role,
		"subscription_status":     user.SubscriptionStatus,
		"subscription_expires_at": formatTimePtr(user.SubscriptionExpiresAt),
		"is_premium":              user.IsPremium,
		"city":                    user.City,
		"province":                user.Province,
		"created_at":              user.CreatedAt.UTC().Format(time.RFC3339),
		"last_login_at":           formatTimePtr(user.LastLoginAt),
	}
}
