// File: database/repository/catalog/crud.go
package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/models"
)

func (r *mongoAppointmentTypeRepo) GetAll(ctx context.Context) ([]models.AppointmentType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query appointment types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.AppointmentType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode appointment types: %w", err)
	}
	return types, nil
}

func (r *mongoAppointmentTypeRepo) GetByName(ctx context.Context, name string) (*models.AppointmentType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t models.AppointmentType
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment type %q: %w", name, err)
	}
	return &t, nil
}

func (r *mongoAppointmentTypeRepo) Create(ctx context.Context, t *models.AppointmentType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create appointment type %q: %w", t.Name, err)
	}
	return nil
}

func (r *mongoAppointmentTypeRepo) Update(ctx context.Context, t *models.AppointmentType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":            t.Name,
		"durationMinutes": t.DurationMinutes,
		"cost":            t.Cost,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": t.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment type %s: %w", t.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAppointmentTypeRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete appointment type %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
