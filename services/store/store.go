package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"barberbook/models"
	"barberbook/utils"
)

// ErrNoImage means the requested storefront image was never uploaded.
var ErrNoImage = errors.New("image not set")

// ErrSettingNotFound means no setting matches the key.
var ErrSettingNotFound = errors.New("setting not found")

func (s *DefaultStoreService) BusinessName(ctx context.Context) (string, error) {
	details, err := s.Repo.GetDetails(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch store details: %w", err)
	}
	if details == nil {
		return "", nil
	}
	return details.Name, nil
}

func (s *DefaultStoreService) SetBusinessName(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("business name is required")
	}
	return s.Repo.SetDetailField(ctx, "name", name)
}

func (s *DefaultStoreService) CoverImageURL(ctx context.Context) (string, error) {
	return s.imageURL(ctx, "coverImage")
}

func (s *DefaultStoreService) LogoImageURL(ctx context.Context) (string, error) {
	return s.imageURL(ctx, "logoImage")
}

func (s *DefaultStoreService) imageURL(ctx context.Context, field string) (string, error) {
	details, err := s.Repo.GetDetails(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch store details: %w", err)
	}
	publicID := ""
	if details != nil {
		switch field {
		case "coverImage":
			publicID = details.CoverImage
		case "logoImage":
			publicID = details.LogoImage
		}
	}
	if publicID == "" {
		return "", ErrNoImage
	}
	url, err := s.Images.URL(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve image url: %w", err)
	}
	return url, nil
}

func (s *DefaultStoreService) UploadCoverImage(ctx context.Context, file io.Reader) (string, error) {
	return s.uploadImage(ctx, file, "coverImage")
}

func (s *DefaultStoreService) UploadLogoImage(ctx context.Context, file io.Reader) (string, error) {
	return s.uploadImage(ctx, file, "logoImage")
}

// uploadImage stores the new image, points the storefront card at it
// and then drops the previous image. Cleanup is best-effort; an
// orphaned image costs storage, a broken reference breaks the app.
func (s *DefaultStoreService) uploadImage(ctx context.Context, file io.Reader, field string) (string, error) {
	details, err := s.Repo.GetDetails(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch store details: %w", err)
	}

	publicID, err := s.Images.Upload(ctx, file, "storefront")
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if err := s.Repo.SetDetailField(ctx, field, publicID); err != nil {
		return "", fmt.Errorf("failed to save image reference: %w", err)
	}

	old := ""
	if details != nil {
		switch field {
		case "coverImage":
			old = details.CoverImage
		case "logoImage":
			old = details.LogoImage
		}
	}
	if old != "" && old != publicID {
		if err := s.Images.Delete(ctx, old); err != nil {
			utils.GetLogger().Warn("failed to delete replaced image",
				zap.String("publicId", old), zap.Error(err))
		}
	}

	url, err := s.Images.URL(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve image url: %w", err)
	}
	return url, nil
}

func (s *DefaultStoreService) Settings(ctx context.Context) ([]models.Setting, error) {
	settings, err := s.Repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return settings, nil
}

func (s *DefaultStoreService) CreateSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	if key == "" {
		return nil, fmt.Errorf("setting key is required")
	}
	existing, err := s.Repo.GetSetting(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check setting: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("setting %q already exists", key)
	}
	setting := &models.Setting{ID: uuid.New().String(), Key: key, Value: value}
	if err := s.Repo.CreateSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to create setting: %w", err)
	}
	return setting, nil
}

func (s *DefaultStoreService) UpdateSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	setting, err := s.Repo.UpdateSetting(ctx, key, value)
	if err != nil {
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}
	return setting, nil
}

func (s *DefaultStoreService) DeleteSetting(ctx context.Context, key string) error {
	existing, err := s.Repo.GetSetting(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check setting: %w", err)
	}
	if existing == nil {
		return ErrSettingNotFound
	}
	return s.Repo.DeleteSetting(ctx, key)
}
