package store

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// DisabledStorage rejects every image operation. Used when no
// Cloudinary credentials are configured; the rest of the API keeps
// working.
type DisabledStorage struct{}

var errStorageDisabled = fmt.Errorf("image storage not configured")

func (DisabledStorage) Upload(context.Context, io.Reader, string) (string, error) {
	return "", errStorageDisabled
}

func (DisabledStorage) Delete(context.Context, string) error { return errStorageDisabled }

func (DisabledStorage) URL(string) (string, error) { return "", errStorageDisabled }

// CloudinaryStorage hosts storefront images on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage builds a storage client from a CLOUDINARY_URL
// style credential string.
func NewCloudinaryStorage(cloudinaryURL string) (*CloudinaryStorage, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary url not configured")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("cloudinary upload returned no public id")
	}
	return result.PublicID, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return nil
}

func (s *CloudinaryStorage) URL(publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to build image asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to render image url: %w", err)
	}
	return url, nil
}
