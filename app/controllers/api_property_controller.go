package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
	"github.com/AndikaSaputra/RumahLink/app/repository"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/metrics/counter"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/permissions"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/usercontext"
)

type propertyCreateRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	PropertyType string   `json:"property_type"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Province     string   `json:"province"`
	PostalCode   string   `json:"postal_code"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	LandSize     *int     `json:"land_size"`
	BuildingSize *int     `json:"building_size"`
	YearBuilt    *int     `json:"year_built"`
	Price        int64    `json:"price"`
	Images       []string `json:"images"`

	// per-listing contact numbers, revealed to premium buyers only
	SellerPhone    string `json:"seller_phone"`
	SellerWhatsapp string `json:"seller_whatsapp"`
}

type propertyUpdateRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	PropertyType *string  `json:"property_type"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	Province     *string  `json:"province"`
	PostalCode   *string  `json:"postal_code"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	LandSize     *int     `json:"land_size"`
	BuildingSize *int     `json:"building_size"`
	YearBuilt    *int     `json:"year_built"`
	Price        *int64   `json:"price"`
	Status       *string  `json:"status"`
	Images       []string `json:"images"`

	SellerPhone    *string `json:"seller_phone"`
	SellerWhatsapp *string `json:"seller_whatsapp"`
}

// HandleAPIPropertyCreate creates a new listing in draft status. Listings go
// live only after admin approval.
func HandleAPIPropertyCreate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req propertyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	if len(req.Images) < models.MinListingImages {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed",
			"A listing needs at least 5 photos")
	}

	property := &models.Property{
		UserID:       userCtx.UserID,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Address:      req.Address,
		City:         req.City,
		Province:     req.Province,
		PostalCode:   req.PostalCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		LandSize:     req.LandSize,
		BuildingSize: req.BuildingSize,
		YearBuilt:    req.YearBuilt,
		Price:        req.Price,
		Currency:     "IDR",
		Status:       models.PROPERTY_STATUS_DRAFT,
		SellerPhone:    strings.TrimSpace(req.SellerPhone),
		SellerWhatsapp: strings.TrimSpace(req.SellerWhatsapp),
	}
	if err := property.SetImages(req.Images); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid image list")
	}
	if err := property.Validate(); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	repo := repository.GetGlobalFactory().GetPropertyRepository()
	if err := repo.Create(property); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create listing")
	}
	if err := repo.ReplaceImages(property.ID, req.Images); err != nil {
		log.Printf("[Property] Failed to store image rows for %d: %v", property.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(propertyResponse(property))
}

// HandleAPIPropertyGet returns a single listing. Unpublished listings are
// visible only to their owner and admins. Each public hit feeds the view
// counter.
func HandleAPIPropertyGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid listing id")
	}

	repo := repository.GetGlobalFactory().GetPropertyRepository()
	property, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Listing not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load listing")
	}

	userCtx := usercontext.GetUserContext(c)
	isOwner := userCtx.IsLoggedIn && property.IsOwnedBy(userCtx.UserID)
	isModerator := usercontext.Can(c, permissions.PermListingModerate)
	if !property.IsPublished() && !isOwner && !isModerator {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "Listing not found")
	}

	if property.IsPublished() && !isOwner {
		if err := counter.AddPropertyView(property.ID); err != nil {
			// count directly when redis is unavailable
			log.Printf("[Property] Failed to count view for %d in cache: %v", property.ID, err)
			if err := repo.AddViews(property.ID, 1); err != nil {
				log.Printf("[Property] Failed to count view for %d: %v", property.ID, err)
			}
		}
	}

	resp := propertyResponse(property)
	if photos, err := repo.GetImages(property.ID); err == nil && len(photos) > 0 {
		resp["photos"] = photos
	}
	if isOwner || isModerator {
		if n, err := repository.GetGlobalFactory().GetContactRequestRepository().CountByProperty(property.ID); err == nil {
			resp["contact_request_count"] = n
		}
	}

	return c.JSON(resp)
}

// HandleAPIPropertySearch filters published listings.
func HandleAPIPropertySearch(c *fiber.Ctx) error {
	offset, limit := parsePagination(c, repository.DefaultSearchLimit, repository.DefaultSearchLimit)

	params := repository.PropertySearchParams{
		City:         c.Query("city"),
		PropertyType: c.Query("property_type"),
		Offset:       offset,
		Limit:        limit,
	}
	if v := c.QueryInt("min_price", -1); v >= 0 {
		minPrice := int64(v)
		params.MinPrice = &minPrice
	}
	if v := c.QueryInt("max_price", -1); v >= 0 {
		maxPrice := int64(v)
		params.MaxPrice = &maxPrice
	}
	if v := c.QueryInt("bedrooms", -1); v >= 0 {
		bedrooms := v
		params.Bedrooms = &bedrooms
	}

	properties, total, err := repository.GetGlobalFactory().GetPropertyRepository().Search(params)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Search failed")
	}

	items := make([]fiber.Map, 0, len(properties))
	for i := range properties {
		items = append(items, propertyResponse(&properties[i]))
	}

	return c.JSON(fiber.Map{
		"items":  items,
		"total":  total,
		"offset": offset,
		"limit":  limit,
	})
}

// HandleAPIMyProperties lists the authenticated user's own listings in every
// status.
func HandleAPIMyProperties(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	offset, limit := parsePagination(c, 20, 100)

	properties, err := repository.GetGlobalFactory().GetPropertyRepository().GetByUserID(userCtx.UserID, offset, limit)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load listings")
	}

	items := make([]fiber.Map, 0, len(properties))
	for i := range properties {
		items = append(items, propertyResponse(&properties[i]))
	}
	return c.JSON(fiber.Map{"items": items, "offset": offset, "limit": limit})
}

// HandleAPIPropertyUpdate applies a partial update to a listing. Owners may
// edit their own listings; moderators may edit any. Edits to a published
// listing send it back to draft for re-approval, except pure status changes
// by the owner (for instance marking a sale).
func HandleAPIPropertyUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid listing id")
	}

	repo := repository.GetGlobalFactory().GetPropertyRepository()
	property, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Listing not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load listing")
	}

	userCtx := usercontext.GetUserContext(c)
	isOwner := property.IsOwnedBy(userCtx.UserID)
	if !isOwner && !usercontext.Can(c, permissions.PermListingUpdateAny) {
		return errorJSON(c, fiber.StatusForbidden, "forbidden", "Not your listing")
	}

	var req propertyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	contentChanged := false

	if req.Title != nil {
		property.Title = strings.TrimSpace(*req.Title)
		contentChanged = true
	}
	if req.Description != nil {
		property.Description = *req.Description
		contentChanged = true
	}
	if req.PropertyType != nil {
		property.PropertyType = *req.PropertyType
		contentChanged = true
	}
	if req.Address != nil {
		property.Address = *req.Address
		contentChanged = true
	}
	if req.City != nil {
		property.City = *req.City
		contentChanged = true
	}
	if req.Province != nil {
		property.Province = *req.Province
		contentChanged = true
	}
	if req.PostalCode != nil {
		property.PostalCode = *req.PostalCode
		contentChanged = true
	}
	if req.Latitude != nil {
		property.Latitude = req.Latitude
		contentChanged = true
	}
	if req.Longitude != nil {
		property.Longitude = req.Longitude
		contentChanged = true
	}
	if req.Bedrooms != nil {
		property.Bedrooms = req.Bedrooms
		contentChanged = true
	}
	if req.Bathrooms != nil {
		property.Bathrooms = req.Bathrooms
		contentChanged = true
	}
	if req.LandSize != nil {
		property.LandSize = req.LandSize
		contentChanged = true
	}
	if req.BuildingSize != nil {
		property.BuildingSize = req.BuildingSize
		contentChanged = true
	}
	if req.YearBuilt != nil {
		property.YearBuilt = req.YearBuilt
		contentChanged = true
	}
	if req.Price != nil {
		property.Price = *req.Price
		contentChanged = true
	}
	if req.Images != nil {
		if len(req.Images) < models.MinListingImages {
			return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed",
				"A listing needs at least 5 photos")
		}
		if err := property.SetImages(req.Images); err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid image list")
		}
		contentChanged = true
	}

	// Contact numbers only feed future disclosure snapshots; changing them
	// does not send a published listing back to review.
	if req.SellerPhone != nil {
		property.SellerPhone = strings.TrimSpace(*req.SellerPhone)
	}
	if req.SellerWhatsapp != nil {
		property.SellerWhatsapp = strings.TrimSpace(*req.SellerWhatsapp)
	}

	if req.Status != nil {
		status := *req.Status
		// Owners may only mark a sale or archive; publishing stays an
		// admin action.
		if status == models.PROPERTY_STATUS_PUBLISHED && !usercontext.Can(c, permissions.PermListingModerate) {
			return errorJSON(c, fiber.StatusForbidden, "forbidden", "Publishing requires approval")
		}
		property.Status = status
	}

	if contentChanged && property.IsPublished() && !usercontext.Can(c, permissions.PermListingModerate) {
		property.Status = models.PROPERTY_STATUS_DRAFT
	}

	if err := property.Validate(); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	if err := repo.Update(property); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update listing")
	}
	if req.Images != nil {
		if err := repo.ReplaceImages(property.ID, req.Images); err != nil {
			log.Printf("[Property] Failed to store image rows for %d: %v", property.ID, err)
		}
	}

	return c.JSON(propertyResponse(property))
}

// HandleAPIPropertyDelete soft deletes the authenticated user's listing.
func HandleAPIPropertyDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid listing id")
	}

	repo := repository.GetGlobalFactory().GetPropertyRepository()
	property, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Listing not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load listing")
	}

	userCtx := usercontext.GetUserContext(c)
	if !property.IsOwnedBy(userCtx.UserID) && !usercontext.Can(c, permissions.PermListingUpdateAny) {
		return errorJSON(c, fiber.StatusForbidden, "forbidden", "Not your listing")
	}

	if err := repo.Delete(property.ID); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete listing")
	}
	return c.JSON(fiber.Map{"success": true})
}
