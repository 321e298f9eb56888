package availability

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityEngine computes availability from the schedule
// rules and the day's bookings. It is stateless; every call fetches the
// rule collections once and holds nothing between calls.
type DefaultAvailabilityEngine struct {
	Schedule     ScheduleSource
	Types        TypeSource
	Appointments BookingSource

	// Location is the business timezone; "today" and the current
	// time-of-day are evaluated in it, never in the host's zone.
	Location *time.Location

	// Now is a test hook; nil means time.Now.
	Now func() time.Time
}

func (e *DefaultAvailabilityEngine) now() time.Time {
	if e.Now != nil {
		return e.Now().In(e.Location)
	}
	return time.Now().In(e.Location)
}

// AvailableDates reports the dates in [startDate, endDate] that are not
// blocked by a day off or vacation. A reported date may still be fully
// booked: this is the coarse day-level answer, not a slot count.
func (e *DefaultAvailabilityEngine) AvailableDates(ctx context.Context, startDate, endDate string) ([]string, error) {
	start, err := time.ParseInLocation(DateLayout, startDate, e.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.ParseInLocation(DateLayout, endDate, e.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	daysOff, err := e.Schedule.GetDaysOff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load days off: %w", err)
	}
	vacations, err := e.Schedule.GetVacations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vacations: %w", err)
	}

	dates := []string{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(DateLayout)
		if !IsDateBlocked(dateStr, daysOff, vacations) {
			dates = append(dates, dateStr)
		}
	}
	return dates, nil
}

// AvailableTimes returns the free slot start times on one date for the
// named appointment type, in order. Past dates, blocked dates, unknown
// types and weekdays with no working hours all yield an empty result
// rather than an error.
func (e *DefaultAvailabilityEngine) AvailableTimes(ctx context.Context, date, typeName string) ([]string, error) {
	day, err := time.ParseInLocation(DateLayout, date, e.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.Location)
	if day.Before(today) {
		return []string{}, nil
	}

	daysOff, err := e.Schedule.GetDaysOff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load days off: %w", err)
	}
	vacations, err := e.Schedule.GetVacations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vacations: %w", err)
	}
	if IsDateBlocked(date, daysOff, vacations) {
		return []string{}, nil
	}

	apptType, err := e.Types.GetByName(ctx, typeName)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment type: %w", err)
	}
	if apptType == nil {
		return []string{}, nil
	}

	hours, err := e.Schedule.GetWorkingHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load working hours: %w", err)
	}
	window := firstWindow(hours, day.Weekday().String())
	if window == nil {
		return []string{}, nil
	}

	slots, err := GenerateSlots(window.StartTime, window.EndTime, apptType.DurationMinutes)
	if err != nil {
		utils.GetLogger().Warn("unusable working window",
			zap.String("dayOfWeek", window.DayOfWeek), zap.Error(err))
		return []string{}, nil
	}

	booked, err := e.Appointments.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments on %s: %w", date, err)
	}
	bookedSlots := make([]models.Slot, len(booked))
	for i, a := range booked {
		bookedSlots[i] = models.Slot{StartTime: a.StartTime, EndTime: a.EndTime}
	}
	free := FilterBooked(slots, bookedSlots)

	// Same-day queries only offer slots starting strictly after now.
	cutoff := ""
	if day.Equal(today) {
		cutoff = now.Format("15:04")
	}

	times := []string{}
	for _, slot := range free {
		if cutoff != "" && slot.StartTime <= cutoff {
			continue
		}
		times = append(times, slot.StartTime)
	}
	return times, nil
}

// firstWindow finds the weekday's working hours. With duplicate records
// for one weekday the first match wins.
func firstWindow(hours []models.WorkingHours, weekday string) *models.WorkingHours {
	for i := range hours {
		if hours[i].DayOfWeek == weekday {
			return &hours[i]
		}
	}
	return nil
}
