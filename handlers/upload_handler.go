package handlers

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"

	config "pgstay-server/configs"
	"pgstay-server/services"
	"pgstay-server/uploads"
)

var uploadFolders = map[string]string{
	"property": uploads.PropertyFolder,
	"profile":  uploads.ProfileFolder,
	"document": uploads.DocumentFolder,
	"review":   uploads.ReviewFolder,
}

// UploadImage takes a multipart "image" file and returns its hosted URL.
// The optional "kind" form field picks the target folder.
func UploadImage(c *fiber.Ctx) error {
	if _, err := userIDFromToken(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image file is required."})
	}

	folder, ok := uploadFolders[c.FormValue("kind", "property")]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown upload kind."})
	}

	imageURL, err := uploads.UploadImage(c.Context(), file, folder)
	if err != nil {
		if errors.Is(err, uploads.ErrInvalidImage) {
			return respondError(c, services.Validation(err.Error()))
		}
		return respondError(c, services.Dependency(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": imageURL})
}

// DeleteImage removes a previously uploaded asset by its URL.
func DeleteImage(c *fiber.Ctx) error {
	if _, err := userIDFromToken(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	type Request struct {
		URL string `json:"url" validate:"required,url"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := uploads.DeleteByURL(c.Context(), req.URL); err != nil {
		return respondError(c, services.Dependency("Failed to delete image."))
	}
	return c.JSON(fiber.Map{"message": "Image deleted."})
}

// GenerateUploadSignature creates a secure signature for a direct frontend
// upload.
func GenerateUploadSignature(c *fiber.Ctx) error {
	if _, err := userIDFromToken(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if uploads.Client == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cloudinary is not configured"})
	}

	folder, ok := uploadFolders[c.Query("kind", "property")]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown upload kind."})
	}

	parsedURL, err := url.Parse(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   uploads.Client.Config.Cloud.APIKey,
		"folder":    folder,
	})
}
