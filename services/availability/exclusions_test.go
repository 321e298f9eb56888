package availability

import (
	"testing"

	"barberbook/models"
)

func TestIsDateBlocked_DayOff(t *testing.T) {
	daysOff := []models.DayOff{{DayOfWeek: "Monday"}}

	// 2024-03-04 is a Monday.
	if !IsDateBlocked("2024-03-04", daysOff, nil) {
		t.Fatal("expected Monday to be blocked")
	}
	if IsDateBlocked("2024-03-05", daysOff, nil) {
		t.Fatal("expected Tuesday to be open")
	}
}

func TestIsDateBlocked_VacationInclusive(t *testing.T) {
	vacations := []models.Vacation{{StartDate: "2024-03-01", EndDate: "2024-03-05"}}

	for _, date := range []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"} {
		if !IsDateBlocked(date, nil, vacations) {
			t.Fatalf("expected %s to be blocked by vacation", date)
		}
	}
	if IsDateBlocked("2024-02-29", nil, vacations) {
		t.Fatal("expected day before vacation to be open")
	}
	if IsDateBlocked("2024-03-06", nil, vacations) {
		t.Fatal("expected day after vacation to be open")
	}
}

func TestIsDateBlocked_MultipleVacationsUnion(t *testing.T) {
	vacations := []models.Vacation{
		{StartDate: "2024-03-01", EndDate: "2024-03-02"},
		{StartDate: "2024-03-10", EndDate: "2024-03-12"},
	}
	if !IsDateBlocked("2024-03-11", nil, vacations) {
		t.Fatal("expected date inside second vacation to be blocked")
	}
	if IsDateBlocked("2024-03-05", nil, vacations) {
		t.Fatal("expected date between vacations to be open")
	}
}

func TestFilterBooked_RemovesOverlaps(t *testing.T) {
	slots, err := GenerateSlots("09:00", "12:00", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	booked := []models.Slot{{StartTime: "10:00", EndTime: "10:30"}}
	free := FilterBooked(slots, booked)
	if len(free) != 5 {
		t.Fatalf("expected 5 free slots, got %d", len(free))
	}
	for _, s := range free {
		if s.StartTime == "10:00" {
			t.Fatal("booked slot still present after filtering")
		}
	}
}

func TestFilterBooked_HalfOpenBoundaries(t *testing.T) {
	slots := []models.Slot{{StartTime: "10:00", EndTime: "10:30"}}

	// Booking ending exactly at the slot's start is not a conflict.
	free := FilterBooked(slots, []models.Slot{{StartTime: "09:30", EndTime: "10:00"}})
	if len(free) != 1 {
		t.Fatal("booking touching slot start should not conflict")
	}

	// Booking starting exactly at the slot's end is not a conflict.
	free = FilterBooked(slots, []models.Slot{{StartTime: "10:30", EndTime: "11:00"}})
	if len(free) != 1 {
		t.Fatal("booking touching slot end should not conflict")
	}

	// A one-minute intrusion is.
	free = FilterBooked(slots, []models.Slot{{StartTime: "10:29", EndTime: "11:00"}})
	if len(free) != 0 {
		t.Fatal("overlapping booking should conflict")
	}
}

func TestFilterBooked_Idempotent(t *testing.T) {
	slots, err := GenerateSlots("09:00", "12:00", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	booked := []models.Slot{
		{StartTime: "09:30", EndTime: "10:00"},
		{StartTime: "11:00", EndTime: "11:30"},
	}

	once := FilterBooked(slots, booked)
	twice := FilterBooked(once, booked)
	if len(once) != len(twice) {
		t.Fatalf("filtering is not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("slot %d changed on second filter: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestWeekday(t *testing.T) {
	day, err := Weekday("2024-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != "Monday" {
		t.Fatalf("expected Monday, got %s", day)
	}
	if _, err := Weekday("not-a-date"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
