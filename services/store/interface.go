package store

import (
	"context"
	"io"

	"barberbook/database/repository/store"
	"barberbook/models"
)

// ImageStorage hosts the storefront images. Upload returns a permanent
// public identifier; URL resolves it to a delivery URL.
type ImageStorage interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
	Delete(ctx context.Context, publicID string) error
	URL(publicID string) (string, error)
}

// StoreService manages the public storefront card and the owner
// settings.
type StoreService interface {
	BusinessName(ctx context.Context) (string, error)
	SetBusinessName(ctx context.Context, name string) error

	CoverImageURL(ctx context.Context) (string, error)
	LogoImageURL(ctx context.Context) (string, error)
	UploadCoverImage(ctx context.Context, file io.Reader) (string, error)
	UploadLogoImage(ctx context.Context, file io.Reader) (string, error)

	Settings(ctx context.Context) ([]models.Setting, error)
	CreateSetting(ctx context.Context, key, value string) (*models.Setting, error)
	UpdateSetting(ctx context.Context, key, value string) (*models.Setting, error)
	DeleteSetting(ctx context.Context, key string) error
}

// DefaultStoreService is the production implementation.
type DefaultStoreService struct {
	Repo   storeRepo.StoreRepository
	Images ImageStorage
}
