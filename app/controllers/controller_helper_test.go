package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/AndikaSaputra/RumahLink/app/models"
)

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "cloudflare header wins",
			headers: map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "first forwarded address",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"},
			want:    "198.51.100.1",
		},
		{
			name:    "real ip header",
			headers: map[string]string{"X-Real-IP": "192.0.2.9"},
			want:    "192.0.2.9",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fiber.New()
			var got string
			app.Get("/", func(c *fiber.Ctx) error {
				got = GetClientIP(c)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantOffset int
		wantLimit  int
	}{
		{name: "defaults", query: "", wantOffset: 0, wantLimit: 20},
		{name: "explicit values", query: "?offset=40&limit=10", wantOffset: 40, wantLimit: 10},
		{name: "negative offset clamped", query: "?offset=-5", wantOffset: 0, wantLimit: 20},
		{name: "oversized limit reset", query: "?limit=5000", wantOffset: 0, wantLimit: 20},
		{name: "zero limit reset", query: "?limit=0", wantOffset: 0, wantLimit: 20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fiber.New()
			var gotOffset, gotLimit int
			app.Get("/", func(c *fiber.Ctx) error {
				gotOffset, gotLimit = parsePagination(c, 20, 100)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantOffset, gotOffset)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestPropertyResponseHidesSellerContact(t *testing.T) {
	t.Parallel()

	property := &models.Property{
		ID:             1,
		UserID:         2,
		Title:          "Rumah Minimalis Bandung",
		SellerPhone:    "0811111111",
		SellerWhatsapp: "0811111112",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	resp := propertyResponse(property)
	assert.NotContains(t, resp, "seller_phone")
	assert.NotContains(t, resp, "seller_whatsapp")
	assert.Equal(t, property.Title, resp["title"])
}
