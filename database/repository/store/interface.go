// File: database/repository/store/interface.go
package storeRepo

import (
	"context"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StoreRepository holds the storefront card, the settings key/value
// collection and the outbound-message audit log.
type StoreRepository interface {
	GetDetails(ctx context.Context) (*models.StoreDetails, error)
	SetDetailField(ctx context.Context, field, value string) error

	GetSettings(ctx context.Context) ([]models.Setting, error)
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	CreateSetting(ctx context.Context, s *models.Setting) error
	UpdateSetting(ctx context.Context, key, value string) (*models.Setting, error)
	DeleteSetting(ctx context.Context, key string) error

	LogMessage(ctx context.Context, log *models.MessageLog) error
}

// detailsDocID is the single storefront document; the business has one
// location.
const detailsDocID = "store"

type mongoStoreRepo struct {
	detailsColl  *mongo.Collection
	settingsColl *mongo.Collection
	messagesColl *mongo.Collection
}

// NewMongoStoreRepo constructs a new MongoDB StoreRepository.
func NewMongoStoreRepo() StoreRepository {
	return &mongoStoreRepo{
		detailsColl:  database.Collection("storeDetails"),
		settingsColl: database.Collection("settings"),
		messagesColl: database.Collection("messageLogs"),
	}
}
