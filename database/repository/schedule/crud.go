// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/models"
)

func (r *mongoScheduleRepo) GetWorkingHours(ctx context.Context) ([]models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.hoursColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query working hours: %w", err)
	}
	defer cursor.Close(ctx)

	var hours []models.WorkingHours
	if err := cursor.All(ctx, &hours); err != nil {
		return nil, fmt.Errorf("failed to decode working hours: %w", err)
	}
	return hours, nil
}

func (r *mongoScheduleRepo) AddWorkingHours(ctx context.Context, wh *models.WorkingHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if wh.ID == "" {
		wh.ID = uuid.New().String()
	}
	if _, err := r.hoursColl.InsertOne(ctx, wh); err != nil {
		return fmt.Errorf("failed to add working hours for %s: %w", wh.DayOfWeek, err)
	}
	return nil
}

func (r *mongoScheduleRepo) UpdateWorkingHours(ctx context.Context, wh *models.WorkingHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"dayOfWeek": wh.DayOfWeek,
		"startTime": wh.StartTime,
		"endTime":   wh.EndTime,
	}}
	res, err := r.hoursColl.UpdateOne(ctx, bson.M{"id": wh.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update working hours %s: %w", wh.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteWorkingHours(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.hoursColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete working hours %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) GetDaysOff(ctx context.Context) ([]models.DayOff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.daysOffColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query days off: %w", err)
	}
	defer cursor.Close(ctx)

	var days []models.DayOff
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("failed to decode days off: %w", err)
	}
	return days, nil
}

func (r *mongoScheduleRepo) AddDayOff(ctx context.Context, d *models.DayOff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if _, err := r.daysOffColl.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("failed to add day off %s: %w", d.DayOfWeek, err)
	}
	return nil
}

// DeleteDayOffByWeekday removes every record for the weekday; duplicates
// can accumulate and a single delete should clear them all.
func (r *mongoScheduleRepo) DeleteDayOffByWeekday(ctx context.Context, dayOfWeek string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.daysOffColl.DeleteMany(ctx, bson.M{"dayOfWeek": dayOfWeek})
	if err != nil {
		return fmt.Errorf("failed to delete day off %s: %w", dayOfWeek, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) GetVacations(ctx context.Context) ([]models.Vacation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.vacationsColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query vacations: %w", err)
	}
	defer cursor.Close(ctx)

	var vacations []models.Vacation
	if err := cursor.All(ctx, &vacations); err != nil {
		return nil, fmt.Errorf("failed to decode vacations: %w", err)
	}
	return vacations, nil
}

func (r *mongoScheduleRepo) GetVacationsEndingAfter(ctx context.Context, date string) ([]models.Vacation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.vacationsColl.Find(ctx, bson.M{"endDate": bson.M{"$gte": date}})
	if err != nil {
		return nil, fmt.Errorf("failed to query vacations ending after %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var vacations []models.Vacation
	if err := cursor.All(ctx, &vacations); err != nil {
		return nil, fmt.Errorf("failed to decode vacations ending after %s: %w", date, err)
	}
	return vacations, nil
}

func (r *mongoScheduleRepo) AddVacation(ctx context.Context, v *models.Vacation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if _, err := r.vacationsColl.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to add vacation [%s, %s]: %w", v.StartDate, v.EndDate, err)
	}
	return nil
}

func (r *mongoScheduleRepo) UpdateVacation(ctx context.Context, v *models.Vacation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"startDate": v.StartDate,
		"endDate":   v.EndDate,
	}}
	res, err := r.vacationsColl.UpdateOne(ctx, bson.M{"id": v.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update vacation %s: %w", v.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteVacation(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.vacationsColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vacation %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
