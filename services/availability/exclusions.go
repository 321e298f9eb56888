package availability

import (
	"time"

	"barberbook/models"
)

// DateLayout is the calendar-date wire format used everywhere.
const DateLayout = "2006-01-02"

// Weekday returns the full English weekday name ("Monday" ... "Sunday")
// for a "YYYY-MM-DD" date, matching the names stored in WorkingHours
// and DayOff records.
func Weekday(date string) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return d.Weekday().String(), nil
}

// IsDateBlocked reports whether the date is fully closed: its weekday
// is a standing day off, or it falls inside any vacation range.
// Vacation ranges are inclusive on both ends.
func IsDateBlocked(date string, daysOff []models.DayOff, vacations []models.Vacation) bool {
	weekday, err := Weekday(date)
	if err != nil {
		// An unparseable date matches no schedule; treat it as blocked.
		return true
	}
	for _, d := range daysOff {
		if d.DayOfWeek == weekday {
			return true
		}
	}
	for _, v := range vacations {
		if v.StartDate <= date && date <= v.EndDate {
			return true
		}
	}
	return false
}

// FilterBooked removes every candidate slot that overlaps a booked
// interval. Intervals are half-open: a booking ending exactly at a
// slot's start, or starting exactly at its end, does not collide.
// Filtering an already-filtered sequence with the same booked set is a
// no-op.
func FilterBooked(slots []models.Slot, booked []models.Slot) []models.Slot {
	if len(booked) == 0 {
		return slots
	}
	free := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		if !overlapsAny(slot, booked) {
			free = append(free, slot)
		}
	}
	return free
}

func overlapsAny(slot models.Slot, booked []models.Slot) bool {
	for _, b := range booked {
		if b.StartTime < slot.EndTime && b.EndTime > slot.StartTime {
			return true
		}
	}
	return false
}
