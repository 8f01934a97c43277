package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/AndikaSaputra/RumahLink/app/models"
	"github.com/AndikaSaputra/RumahLink/app/repository"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/database"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/mail"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/metrics/counter"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/moderation"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/usercontext"
)

func moderationService() *moderation.Service {
	return moderation.NewServiceFromDB(database.GetDB())
}

// HandleAPIAdminUsers lists or searches accounts.
func HandleAPIAdminUsers(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetUserRepository()

	if query := c.Query("q"); query != "" {
		users, err := repo.Search(query)
		if err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Search failed")
		}
		items := make([]fiber.Map, 0, len(users))
		for i := range users {
			items = append(items, userResponse(&users[i]))
		}
		return c.JSON(fiber.Map{"items": items})
	}

	offset, limit := parsePagination(c, 20, 100)
	users, err := repo.List(offset, limit)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load users")
	}
	total, _ := repo.Count()

	items := make([]fiber.Map, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"items": items, "total": total, "offset": offset, "limit": limit})
}

// HandleAPIAdminPendingProperties lists listings waiting for approval.
func HandleAPIAdminPendingProperties(c *fiber.Ctx) error {
	offset, limit := parsePagination(c, 20, 100)

	properties, err := repository.GetGlobalFactory().GetPropertyRepository().
		ListByStatus(models.PROPERTY_STATUS_DRAFT, offset, limit)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load listings")
	}

	items := make([]fiber.Map, 0, len(properties))
	for i := range properties {
		items = append(items, propertyResponse(&properties[i]))
	}
	return c.JSON(fiber.Map{"items": items, "offset": offset, "limit": limit})
}

// HandleAPIAdminApproveProperty publishes a listing and notifies the seller.
func HandleAPIAdminApproveProperty(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid listing id")
	}

	property, err := moderationService().ApproveProperty(c.Context(), userCtx.UserID, propertyID, GetClientIP(c))
	if err != nil {
		if errors.Is(err, moderation.ErrPropertyNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Listing not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to approve listing")
	}

	go func(ownerID uint, title string) {
		owner, err := repository.GetGlobalFactory().GetUserRepository().GetByID(ownerID)
		if err != nil || owner.Email == "" {
			return
		}
		if err := mail.SendListingApproved(owner.Email, title); err != nil {
			log.Printf("[Admin] Failed to send approval mail for %q: %v", title, err)
		}
	}(property.UserID, property.Title)

	return c.JSON(propertyResponse(property))
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// HandleAPIAdminRejectProperty archives a listing.
func HandleAPIAdminRejectProperty(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid listing id")
	}

	var req rejectRequest
	// body is optional
	_ = c.BodyParser(&req)

	property, err := moderationService().RejectProperty(c.Context(), userCtx.UserID, propertyID, req.Reason, GetClientIP(c))
	if err != nil {
		if errors.Is(err, moderation.ErrPropertyNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Listing not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to reject listing")
	}

	return c.JSON(propertyResponse(property))
}

// HandleAPIAdminPromoteSeller grants a user the seller role.
func HandleAPIAdminPromoteSeller(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid user id")
	}

	user, err := moderationService().PromoteToSeller(c.Context(), userCtx.UserID, targetID, GetClientIP(c))
	if err != nil {
		if errors.Is(err, moderation.ErrUserNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "User not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to promote user")
	}

	return c.JSON(userResponse(user))
}

// HandleAPIAdminLogs lists audit entries, optionally narrowed to one admin
// via ?admin_id=.
func HandleAPIAdminLogs(c *fiber.Ctx) error {
	offset, limit := parsePagination(c, 50, 200)
	repo := repository.GetGlobalFactory().GetAdminLogRepository()

	var entries []models.AdminLog
	var err error
	if adminID := c.QueryInt("admin_id", 0); adminID > 0 {
		entries, err = repo.ListByAdmin(uint(adminID), offset, limit)
	} else {
		entries, err = repo.List(offset, limit)
	}
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load audit log")
	}
	return c.JSON(fiber.Map{"items": entries, "offset": offset, "limit": limit})
}

// HandleAPIAdminFlushCounters drains pending view counters into the database.
func HandleAPIAdminFlushCounters(c *fiber.Ctx) error {
	if err := counter.FlushAll(); err != nil {
		log.Printf("[Admin] Counter flush failed: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Counter flush failed")
	}
	return c.JSON(fiber.Map{"success": true})
}
