// File: database/repository/store/crud.go
package storeRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"barberbook/models"
)

func optionsUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}

func optionsReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

func (r *mongoStoreRepo) GetDetails(ctx context.Context) (*models.StoreDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var details models.StoreDetails
	err := r.detailsColl.FindOne(ctx, bson.M{"id": detailsDocID}).Decode(&details)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch store details: %w", err)
	}
	return &details, nil
}

// SetDetailField updates one storefront field ("name", "coverImage" or
// "logoImage"), creating the document on first write.
func (r *mongoStoreRepo) SetDetailField(ctx context.Context, field, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{field: value, "id": detailsDocID}}
	opts := optionsUpsert()
	if _, err := r.detailsColl.UpdateOne(ctx, bson.M{"id": detailsDocID}, update, opts); err != nil {
		return fmt.Errorf("failed to set store %s: %w", field, err)
	}
	return nil
}

func (r *mongoStoreRepo) GetSettings(ctx context.Context) ([]models.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.settingsColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer cursor.Close(ctx)

	var settings []models.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

func (r *mongoStoreRepo) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Setting
	err := r.settingsColl.FindOne(ctx, bson.M{"key": key}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch setting %q: %w", key, err)
	}
	return &s, nil
}

func (r *mongoStoreRepo) CreateSetting(ctx context.Context, s *models.Setting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if _, err := r.settingsColl.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create setting %q: %w", s.Key, err)
	}
	return nil
}

func (r *mongoStoreRepo) UpdateSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var updated models.Setting
	update := bson.M{"$set": bson.M{"value": value}}
	opts := optionsReturnAfter()
	err := r.settingsColl.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to update setting %q: %w", key, err)
	}
	return &updated, nil
}

func (r *mongoStoreRepo) DeleteSetting(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.settingsColl.DeleteOne(ctx, bson.M{"key": key})
	if err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoStoreRepo) LogMessage(ctx context.Context, log *models.MessageLog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.SentAt.IsZero() {
		log.SentAt = time.Now()
	}
	if _, err := r.messagesColl.InsertOne(ctx, log); err != nil {
		return fmt.Errorf("failed to log message to %s: %w", log.Phone, err)
	}
	return nil
}
