package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
	"github.com/AndikaSaputra/RumahLink/app/repository"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/usercontext"
)

type reviewCreateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// HandleAPIReviewCreate adds a rating to a published listing.
func HandleAPIReviewCreate(c *fiber.Ctx) error {
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid listing id")
	}

	property, err := repository.GetGlobalFactory().GetPropertyRepository().GetByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Listing not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load listing")
	}
	if !property.IsPublished() {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "Listing not found")
	}

	userCtx := usercontext.GetUserContext(c)
	if property.IsOwnedBy(userCtx.UserID) {
		return errorJSON(c, fiber.StatusForbidden, "forbidden", "You cannot review your own listing")
	}

	var req reviewCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	review := &models.Review{
		PropertyID: propertyID,
		UserID:     userCtx.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := review.Validate(); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	if err := repository.GetGlobalFactory().GetReviewRepository().Create(review); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create review")
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleAPIPropertyReviews lists a listing's reviews with the aggregate
// rating.
func HandleAPIPropertyReviews(c *fiber.Ctx) error {
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid listing id")
	}
	offset, limit := parsePagination(c, 20, 100)

	repo := repository.GetGlobalFactory().GetReviewRepository()
	reviews, err := repo.GetByPropertyID(propertyID, offset, limit)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load reviews")
	}
	avg, count, err := repo.AverageRating(propertyID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load rating")
	}

	return c.JSON(fiber.Map{
		"items":          reviews,
		"average_rating": avg,
		"total":          count,
		"offset":         offset,
		"limit":          limit,
	})
}
