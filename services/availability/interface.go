package availability

import (
	"context"

	"barberbook/models"
)

// ScheduleSource is the slice of the schedule store the engine reads.
type ScheduleSource interface {
	GetWorkingHours(ctx context.Context) ([]models.WorkingHours, error)
	GetDaysOff(ctx context.Context) ([]models.DayOff, error)
	GetVacations(ctx context.Context) ([]models.Vacation, error)
}

// TypeSource resolves an appointment type by its human-readable name.
// Returns (nil, nil) when no type matches.
type TypeSource interface {
	GetByName(ctx context.Context, name string) (*models.AppointmentType, error)
}

// BookingSource yields the appointments already booked on a date.
type BookingSource interface {
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
}

// Engine answers the two availability questions: which dates in a range
// are open at all (coarse), and which start times remain free on one
// date (fine).
type Engine interface {
	AvailableDates(ctx context.Context, startDate, endDate string) ([]string, error)
	AvailableTimes(ctx context.Context, date, typeName string) ([]string, error)
}
