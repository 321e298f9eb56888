package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberbook/models"
)

type fakeScheduleRepo struct {
	hours     []models.WorkingHours
	daysOff   []models.DayOff
	vacations []models.Vacation

	endingAfterArg string
}

func (f *fakeScheduleRepo) GetWorkingHours(context.Context) ([]models.WorkingHours, error) {
	return f.hours, nil
}
func (f *fakeScheduleRepo) AddWorkingHours(_ context.Context, wh *models.WorkingHours) error {
	f.hours = append(f.hours, *wh)
	return nil
}
func (f *fakeScheduleRepo) UpdateWorkingHours(context.Context, *models.WorkingHours) error {
	return nil
}
func (f *fakeScheduleRepo) DeleteWorkingHours(context.Context, string) error { return nil }

func (f *fakeScheduleRepo) GetDaysOff(context.Context) ([]models.DayOff, error) {
	return f.daysOff, nil
}
func (f *fakeScheduleRepo) AddDayOff(_ context.Context, d *models.DayOff) error {
	f.daysOff = append(f.daysOff, *d)
	return nil
}
func (f *fakeScheduleRepo) DeleteDayOffByWeekday(context.Context, string) error { return nil }

func (f *fakeScheduleRepo) GetVacations(context.Context) ([]models.Vacation, error) {
	return f.vacations, nil
}
func (f *fakeScheduleRepo) GetVacationsEndingAfter(_ context.Context, date string) ([]models.Vacation, error) {
	f.endingAfterArg = date
	return f.vacations, nil
}
func (f *fakeScheduleRepo) AddVacation(_ context.Context, v *models.Vacation) error {
	f.vacations = append(f.vacations, *v)
	return nil
}
func (f *fakeScheduleRepo) UpdateVacation(context.Context, *models.Vacation) error { return nil }
func (f *fakeScheduleRepo) DeleteVacation(context.Context, string) error           { return nil }

func newTestScheduleService(repo *fakeScheduleRepo) *DefaultScheduleService {
	return &DefaultScheduleService{
		Repo:     repo,
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestAddWorkingHours_Validation(t *testing.T) {
	svc := newTestScheduleService(&fakeScheduleRepo{})

	cases := []struct {
		name string
		wh   models.WorkingHours
	}{
		{"bad weekday", models.WorkingHours{DayOfWeek: "Funday", StartTime: "09:00", EndTime: "17:00"}},
		{"bad clock", models.WorkingHours{DayOfWeek: "Monday", StartTime: "9am", EndTime: "17:00"}},
		{"inverted window", models.WorkingHours{DayOfWeek: "Monday", StartTime: "17:00", EndTime: "09:00"}},
		{"empty window", models.WorkingHours{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "09:00"}},
	}
	for _, tc := range cases {
		if _, err := svc.AddWorkingHours(context.Background(), tc.wh); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}

	created, err := svc.AddWorkingHours(context.Background(), models.WorkingHours{
		DayOfWeek: "Monday", StartTime: "09:00", EndTime: "17:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
}

func TestAddDayOff(t *testing.T) {
	svc := newTestScheduleService(&fakeScheduleRepo{})

	if _, err := svc.AddDayOff(context.Background(), "monday"); !errors.Is(err, ErrInvalidWeekday) {
		t.Fatalf("lowercase weekday should be rejected, got %v", err)
	}
	d, err := svc.AddDayOff(context.Background(), "Tuesday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.DayOfWeek != "Tuesday" {
		t.Fatalf("unexpected day: %+v", d)
	}
}

func TestVacations_FiltersByToday(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestScheduleService(repo)

	if _, err := svc.Vacations(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The repo is asked for vacations ending on or after today.
	if repo.endingAfterArg != "2024-03-01" {
		t.Fatalf("expected cutoff 2024-03-01, got %q", repo.endingAfterArg)
	}
}

func TestAddVacation_Validation(t *testing.T) {
	svc := newTestScheduleService(&fakeScheduleRepo{})

	if _, err := svc.AddVacation(context.Background(), models.Vacation{
		StartDate: "2024-03-10", EndDate: "2024-03-05",
	}); err == nil {
		t.Fatal("expected an error for an inverted range")
	}
	if _, err := svc.AddVacation(context.Background(), models.Vacation{
		StartDate: "10/03/2024", EndDate: "2024-03-12",
	}); err == nil {
		t.Fatal("expected an error for a malformed date")
	}

	// Single-day vacation is valid; the range is inclusive.
	v, err := svc.AddVacation(context.Background(), models.Vacation{
		StartDate: "2024-03-10", EndDate: "2024-03-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID == "" {
		t.Fatal("expected a generated id")
	}
}
