// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository holds the three exclusion-rule collections the
// availability engine reads: weekly working hours, weekly days off and
// one-off vacation ranges.
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context) ([]models.WorkingHours, error)
	AddWorkingHours(ctx context.Context, wh *models.WorkingHours) error
	UpdateWorkingHours(ctx context.Context, wh *models.WorkingHours) error
	DeleteWorkingHours(ctx context.Context, id string) error

	GetDaysOff(ctx context.Context) ([]models.DayOff, error)
	AddDayOff(ctx context.Context, d *models.DayOff) error
	DeleteDayOffByWeekday(ctx context.Context, dayOfWeek string) error

	GetVacations(ctx context.Context) ([]models.Vacation, error)
	GetVacationsEndingAfter(ctx context.Context, date string) ([]models.Vacation, error)
	AddVacation(ctx context.Context, v *models.Vacation) error
	UpdateVacation(ctx context.Context, v *models.Vacation) error
	DeleteVacation(ctx context.Context, id string) error
}

type mongoScheduleRepo struct {
	hoursColl     *mongo.Collection
	daysOffColl   *mongo.Collection
	vacationsColl *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		hoursColl:     database.Collection("workingHours"),
		daysOffColl:   database.Collection("daysOff"),
		vacationsColl: database.Collection("vacations"),
	}
}
