package uploads

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	config "pgstay-server/configs"
)

const (
	// MaxImageSize caps uploads at 10MB.
	MaxImageSize = 10 << 20

	PropertyFolder = "pgstay_properties"
	ProfileFolder  = "pgstay_profiles"
	DocumentFolder = "pgstay_documents"
	ReviewFolder   = "pgstay_reviews"
)

// ErrInvalidImage marks rejections of the file itself rather than provider
// failures.
var ErrInvalidImage = errors.New("invalid image")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var Client *cloudinary.Cloudinary

func InitCloudinary() {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	if cloudinaryURL == "" {
		log.Println("⚠️ CLOUDINARY_URL not set, image uploads disabled.")
		return
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		log.Printf("🔥 Failed to initialize Cloudinary: %v", err)
		return
	}
	Client = cld
	log.Println("✅ Cloudinary initialized successfully.")
}

// UploadImage validates and uploads a multipart image, returning its secure
// URL.
func UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("cloudinary not configured")
	}
	if file.Size > MaxImageSize {
		return "", fmt.Errorf("%w: maximum size is 10MB", ErrInvalidImage)
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("%w: unsupported file type %s", ErrInvalidImage, contentType)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := Client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeFilename(file.Filename)),
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return result.SecureURL, nil
}

// DeleteByURL removes an asset given the secure URL a previous upload
// returned. Unknown URLs are ignored.
func DeleteByURL(ctx context.Context, imageURL string) error {
	if Client == nil {
		return fmt.Errorf("cloudinary not configured")
	}

	publicID := publicIDFromURL(imageURL)
	if publicID == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := Client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

func sanitizeFilename(name string) string {
	name = strings.TrimSuffix(name, path.Ext(name))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}

// publicIDFromURL extracts "<folder>/<name>" from a delivery URL like
// https://res.cloudinary.com/<cloud>/image/upload/v123/<folder>/<name>.jpg
func publicIDFromURL(imageURL string) string {
	idx := strings.Index(imageURL, "/upload/")
	if idx < 0 {
		return ""
	}
	rest := imageURL[idx+len("/upload/"):]
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) == 2 && strings.HasPrefix(parts[0], "v") {
		rest = parts[1]
	}
	return strings.TrimSuffix(rest, path.Ext(rest))
}
