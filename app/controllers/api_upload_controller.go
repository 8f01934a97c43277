package controllers

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/AndikaSaputra/RumahLink/internal/pkg/storage"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/usercontext"
)

const (
	maxPhotoBytes  = 10 * 1024 * 1024
	thumbnailWidth = 640
	localUploadDir = "./uploads/properties"
)

var (
	storageClient     *storage.Client
	storageClientOnce sync.Once
)

func getStorageClient() *storage.Client {
	storageClientOnce.Do(func() {
		cfg := storage.ConfigFromEnv()
		if !cfg.IsEnabled() {
			log.Printf("[Upload] S3 storage not configured, falling back to local disk")
			return
		}
		client, err := storage.NewClient(cfg)
		if err != nil {
			log.Printf("[Upload] S3 storage unavailable, falling back to local disk: %v", err)
			return
		}
		storageClient = client
	})
	return storageClient
}

// HandleAPIUploadImage accepts one listing photo, re-encodes it with a
// thumbnail variant and stores both. Returns the URLs to embed in a listing.
func HandleAPIUploadImage(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Missing file field")
	}
	if fileHeader.Size > maxPhotoBytes {
		return errorJSON(c, fiber.StatusRequestEntityTooLarge, "file_too_large", "Photo exceeds 10 MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to read upload")
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "invalid_image", "File is not a supported image")
	}

	// Normalize to JPEG; listings never serve the original container format.
	var full bytes.Buffer
	if err := jpeg.Encode(&full, img, &jpeg.Options{Quality: 85}); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to encode photo")
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	var thumbBuf bytes.Buffer
	if err := jpeg.Encode(&thumbBuf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to encode thumbnail")
	}

	id := uuid.New().String()
	now := time.Now()
	keyPrefix := fmt.Sprintf("properties/%d/%s", userCtx.UserID, now.Format("2006/01"))
	fullKey := fmt.Sprintf("%s/%s.jpg", keyPrefix, id)
	thumbKey := fmt.Sprintf("%s/%s_thumb.jpg", keyPrefix, id)

	var fullURL, thumbURL string
	if client := getStorageClient(); client != nil {
		fullURL, err = client.UploadPhoto(c.Context(), fullKey, full.Bytes(), "image/jpeg")
		if err == nil {
			thumbURL, err = client.UploadPhoto(c.Context(), thumbKey, thumbBuf.Bytes(), "image/jpeg")
		}
		if err != nil {
			log.Printf("[Upload] S3 upload failed: %v", err)
			return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to store photo")
		}
	} else {
		fullURL, err = saveLocal(fullKey, full.Bytes())
		if err == nil {
			thumbURL, err = saveLocal(thumbKey, thumbBuf.Bytes())
		}
		if err != nil {
			log.Printf("[Upload] Local save failed: %v", err)
			return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to store photo")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":           fullURL,
		"thumbnail_url": thumbURL,
		"width":         img.Bounds().Dx(),
		"height":        img.Bounds().Dy(),
	})
}

func saveLocal(key string, data []byte) (string, error) {
	rel := strings.TrimPrefix(key, "properties/")
	path := filepath.Join(localUploadDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(filepath.Join("uploads/properties", rel)), nil
}
