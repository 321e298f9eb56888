package availability

import (
	"context"
	"testing"
	"time"

	"barberbook/models"
)

type fakeSchedule struct {
	hours     []models.WorkingHours
	daysOff   []models.DayOff
	vacations []models.Vacation
}

func (f *fakeSchedule) GetWorkingHours(context.Context) ([]models.WorkingHours, error) {
	return f.hours, nil
}
func (f *fakeSchedule) GetDaysOff(context.Context) ([]models.DayOff, error) {
	return f.daysOff, nil
}
func (f *fakeSchedule) GetVacations(context.Context) ([]models.Vacation, error) {
	return f.vacations, nil
}

type fakeTypes struct {
	types map[string]models.AppointmentType
}

func (f *fakeTypes) GetByName(_ context.Context, name string) (*models.AppointmentType, error) {
	if t, ok := f.types[name]; ok {
		return &t, nil
	}
	return nil, nil
}

type fakeBookings struct {
	byDate map[string][]models.Appointment
}

func (f *fakeBookings) GetByDate(_ context.Context, date string) ([]models.Appointment, error) {
	return f.byDate[date], nil
}

func newTestEngine(now time.Time) *DefaultAvailabilityEngine {
	allWeek := []models.WorkingHours{}
	for _, day := range []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"} {
		allWeek = append(allWeek, models.WorkingHours{DayOfWeek: day, StartTime: "09:00", EndTime: "17:00"})
	}
	return &DefaultAvailabilityEngine{
		Schedule: &fakeSchedule{hours: allWeek},
		Types: &fakeTypes{types: map[string]models.AppointmentType{
			"haircut": {Name: "haircut", DurationMinutes: 30, Cost: 80},
		}},
		Appointments: &fakeBookings{byDate: map[string][]models.Appointment{}},
		Location:     time.UTC,
		Now:          func() time.Time { return now },
	}
}

func TestAvailableDates_SkipsBlockedDays(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(now)
	e.Schedule = &fakeSchedule{
		daysOff:   []models.DayOff{{DayOfWeek: "Monday"}},
		vacations: []models.Vacation{{StartDate: "2024-03-06", EndDate: "2024-03-07"}},
	}

	// 2024-03-04 is a Monday; 03-06 and 03-07 are on vacation.
	dates, err := e.AvailableDates(context.Background(), "2024-03-04", "2024-03-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2024-03-05", "2024-03-08"}
	if len(dates) != len(want) {
		t.Fatalf("expected %v, got %v", want, dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, dates)
		}
	}
}

func TestAvailableDates_FullyBookedDayStillReported(t *testing.T) {
	// Coarse mode means "not blocked", not "has free capacity".
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(now)
	e.Appointments = &fakeBookings{byDate: map[string][]models.Appointment{
		"2024-03-05": {{Date: "2024-03-05", StartTime: "09:00", EndTime: "17:00"}},
	}}

	dates, err := e.AvailableDates(context.Background(), "2024-03-05", "2024-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 1 || dates[0] != "2024-03-05" {
		t.Fatalf("expected the fully booked day to still be listed, got %v", dates)
	}
}

func TestAvailableDates_InvalidRange(t *testing.T) {
	e := newTestEngine(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	if _, err := e.AvailableDates(context.Background(), "03/04/2024", "2024-03-08"); err == nil {
		t.Fatal("expected error for malformed start date")
	}
}

func TestAvailableTimes_PastDateEmpty(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(now)

	times, err := e.AvailableTimes(context.Background(), "2024-03-09", "haircut")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 0 {
		t.Fatalf("expected no times for a past date, got %v", times)
	}
}

func TestAvailableTimes_BlockedDateEmpty(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(now)
	e.Schedule = &fakeSchedule{
		hours:   []models.WorkingHours{{DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "17:00"}},
		daysOff: []models.DayOff{{DayOfWeek: "Tuesday"}},
	}

	times, err := e.AvailableTimes(context.Background(), "2024-03-05", "haircut")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 0 {
		t.Fatalf("expected no times on a day off, got %v", times)
	}
}

func TestAvailableTimes_NoWorkingHoursEmpty(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(now)
	e.Schedule = &fakeSchedule{
		hours: []models.WorkingHours{{DayOfWeek: "Friday", StartTime: "09:00", EndTime: "13:00"}},
	}

	// 2024-03-05 is a Tuesday; only Friday has hours.
	times, err := e.AvailableTimes(context.Background(), "2024-03-05", "haircut")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 0 {
		t.Fatalf("expected no times without working hours, got %v", times)
	}
}

func TestAvailableTimes_UnknownTypeEmpty(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(now)

	times, err := e.AvailableTimes(context.Background(), "2024-03-05", "perm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 0 {
		t.Fatalf("expected no times for unknown type, got %v", times)
	}
}

func TestAvailableTimes_ExcludesBookedSlots(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	e := newTestEngine(now)
	e.Schedule = &fakeSchedule{
		hours: []models.WorkingHours{{DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "12:00"}},
	}
	e.Appointments = &fakeBookings{byDate: map[string][]models.Appointment{
		"2024-03-05": {{Date: "2024-03-05", StartTime: "10:00", EndTime: "10:30"}},
	}}

	times, err := e.AvailableTimes(context.Background(), "2024-03-05", "haircut")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
	if len(times) != len(want) {
		t.Fatalf("expected %v, got %v", want, times)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, times)
		}
	}
}

func TestAvailableTimes_TodayDropsElapsedSlots(t *testing.T) {
	// 14:00 on the queried day: only starts strictly after 14:00 remain.
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	e := newTestEngine(now)
	e.Schedule = &fakeSchedule{
		hours: []models.WorkingHours{{DayOfWeek: "Tuesday", StartTime: "13:30", EndTime: "15:00"}},
	}

	times, err := e.AvailableTimes(context.Background(), "2024-03-05", "haircut")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"14:30"}
	if len(times) != 1 || times[0] != want[0] {
		t.Fatalf("expected %v, got %v", want, times)
	}
}

func TestAvailableTimes_DuplicateWorkingHoursFirstWins(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	e := newTestEngine(now)
	e.Schedule = &fakeSchedule{
		hours: []models.WorkingHours{
			{DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "10:00"},
			{DayOfWeek: "Tuesday", StartTime: "12:00", EndTime: "18:00"},
		},
	}

	times, err := e.AvailableTimes(context.Background(), "2024-03-05", "haircut")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30"}
	if len(times) != len(want) {
		t.Fatalf("expected first working-hours record to win, got %v", times)
	}
}
