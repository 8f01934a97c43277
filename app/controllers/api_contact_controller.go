package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/AndikaSaputra/RumahLink/app/repository"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/contact"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/database"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/subscription"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/usercontext"
)

func contactService() *contact.Service {
	db := database.GetDB()
	return contact.NewService(contact.NewRepository(db), subscription.NewServiceFromDB(db))
}

// HandleAPIContactRequest reveals a seller's contact details to a premium
// buyer.
func HandleAPIContactRequest(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid listing id")
	}

	info, err := contactService().RequestContact(c.Context(), userCtx.UserID, propertyID)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrPremiumRequired):
			return errorJSON(c, fiber.StatusForbidden, "premium_required", "An active premium subscription is required")
		case errors.Is(err, contact.ErrPropertyNotFound):
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Listing not found")
		default:
			return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to process request")
		}
	}

	return c.JSON(info)
}

// HandleAPIContactHistory lists the listings whose contact details the user
// already unlocked.
func HandleAPIContactHistory(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	history, err := repository.GetGlobalFactory().GetContactRequestRepository().GetByUserID(userCtx.UserID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load history")
	}
	return c.JSON(fiber.Map{"items": history})
}
