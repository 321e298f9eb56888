// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"barberbook/models"
)

func (r *mongoAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments on %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments on %s: %w", date, err)
	}
	return appts, nil
}

// HasOverlap reports whether any appointment on date intersects the
// half-open interval [startTime, endTime). A booking that ends exactly
// when another starts does not collide.
func (r *mongoAppointmentRepo) HasOverlap(ctx context.Context, date, startTime, endTime string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":      date,
		"startTime": bson.M{"$lt": endTime},
		"endTime":   bson.M{"$gt": startTime},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check overlap on %s: %w", date, err)
	}
	return count > 0, nil
}

// GetUpcomingByPhone returns a customer's appointments that have not
// started yet: any future date, or today with a start time past
// timeOfDay. Sorted soonest first.
func (r *mongoAppointmentRepo) GetUpcomingByPhone(ctx context.Context, phone, today, timeOfDay string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"phone": phone,
		"$or": bson.A{
			bson.M{"date": bson.M{"$gt": today}},
			bson.M{"date": today, "startTime": bson.M{"$gt": timeOfDay}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming appointments for %s: %w", phone, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode upcoming appointments for %s: %w", phone, err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) CountBetween(ctx context.Context, startDate, endDate string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": startDate, "$lte": endDate}}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments in [%s, %s]: %w", startDate, endDate, err)
	}
	return count, nil
}

func (r *mongoAppointmentRepo) GetCancellationsByDate(ctx context.Context, date string) ([]models.CanceledAppointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.canceledColl.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to query cancellations on %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var recs []models.CanceledAppointment
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode cancellations on %s: %w", date, err)
	}
	return recs, nil
}
