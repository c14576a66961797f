package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage uploads blobs to a Cloudinary bucket.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

var _ BlobStorage = (*CloudinaryStorage)(nil)

// NewCloudinaryStorage connects using a cloudinary:// URL.
func NewCloudinaryStorage(cloudinaryURL string) (*CloudinaryStorage, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary URL is required")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, key string, r io.Reader, mimeType string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     key,
		ResourceType: resourceType(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob: %w", err)
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return result.URL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, key string, mimeType string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     key,
		ResourceType: resourceType(mimeType),
	})
	if err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// Cloudinary addresses blobs by resource type; non-media files live
// under "raw".
func resourceType(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	default:
		return "raw"
	}
}
