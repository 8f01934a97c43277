package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

// GetClientIP determines the actual client IP address considering proxies.
func GetClientIP(c *fiber.Ctx) string {
	// Cloudflare provides the original client IP in this header
	if cfIP := c.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}

	// X-Forwarded-For can contain a list of IPs - the first one is the
	// original client IP
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}

	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return c.IP()
}

// parseIDParam reads a positive numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// parsePagination reads offset/limit query parameters with sane bounds.
func parsePagination(c *fiber.Ctx, defaultLimit, maxLimit int) (int, int) {
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return offset, limit
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// propertyResponse shapes one listing for API output. Seller contact details
// are stripped; those are only released through the contact endpoint.
func propertyResponse(p *models.Property) fiber.Map {
	return fiber.Map{
		"id":            p.ID,
		"user_id":       p.UserID,
		"title":         p.Title,
		"description":   p.Description,
		"property_type": p.PropertyType,
		"address":       p.Address,
		"city":          p.City,
		"province":      p.Province,
		"postal_code":   p.PostalCode,
		"latitude":      p.Latitude,
		"longitude":     p.Longitude,
		"bedrooms":      p.Bedrooms,
		"bathrooms":     p.Bathrooms,
		"land_size":     p.LandSize,
		"building_size": p.BuildingSize,
		"year_built":    p.YearBuilt,
		"price":         p.Price,
		"currency":      p.Currency,
		"status":        p.Status,
		"images":        p.Images(),
		"image_count":   p.ImageCount,
		"views":         p.Views,
		"created_at":    p.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":    p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}
