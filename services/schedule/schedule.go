package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/database/repository/schedule"
	"barberbook/models"
	"barberbook/services/availability"
)

var (
	// ErrNotFound means no schedule record matches the id.
	ErrNotFound = errors.New("schedule record not found")

	// ErrInvalidWeekday means the day name is not a full English
	// weekday ("Monday" ... "Sunday").
	ErrInvalidWeekday = errors.New("invalid day of week")
)

// ScheduleService manages the exclusion rules the availability engine
// reads: weekly working hours, weekly days off and vacation ranges.
type ScheduleService interface {
	WorkingHours(ctx context.Context) ([]models.WorkingHours, error)
	AddWorkingHours(ctx context.Context, wh models.WorkingHours) (*models.WorkingHours, error)
	UpdateWorkingHours(ctx context.Context, wh models.WorkingHours) (*models.WorkingHours, error)
	DeleteWorkingHours(ctx context.Context, id string) error

	DaysOff(ctx context.Context) ([]models.DayOff, error)
	AddDayOff(ctx context.Context, dayOfWeek string) (*models.DayOff, error)
	DeleteDayOff(ctx context.Context, dayOfWeek string) error

	// Vacations returns only vacations that have not ended yet.
	Vacations(ctx context.Context) ([]models.Vacation, error)
	AddVacation(ctx context.Context, v models.Vacation) (*models.Vacation, error)
	UpdateVacation(ctx context.Context, v models.Vacation) (*models.Vacation, error)
	DeleteVacation(ctx context.Context, id string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository

	// Location is the business timezone; "not ended yet" for vacations
	// is judged against today in this zone.
	Location *time.Location

	// Now is a test hook; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultScheduleService) today() string {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return now.In(s.Location).Format(availability.DateLayout)
}

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

func validWeekday(day string) bool { return weekdays[day] }

func validClock(value string) bool {
	_, err := availability.ParseClock(value)
	return err == nil
}

func validDate(value string) bool {
	_, err := time.Parse(availability.DateLayout, value)
	return err == nil
}

func (s *DefaultScheduleService) WorkingHours(ctx context.Context) ([]models.WorkingHours, error) {
	hours, err := s.Repo.GetWorkingHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch working hours: %w", err)
	}
	return hours, nil
}

func validateWorkingHours(wh models.WorkingHours) error {
	if !validWeekday(wh.DayOfWeek) {
		return ErrInvalidWeekday
	}
	if !validClock(wh.StartTime) || !validClock(wh.EndTime) {
		return fmt.Errorf("times must be HH:MM")
	}
	if wh.StartTime >= wh.EndTime {
		return fmt.Errorf("start time must be before end time")
	}
	return nil
}

func (s *DefaultScheduleService) AddWorkingHours(ctx context.Context, wh models.WorkingHours) (*models.WorkingHours, error) {
	if err := validateWorkingHours(wh); err != nil {
		return nil, err
	}
	wh.ID = uuid.New().String()
	if err := s.Repo.AddWorkingHours(ctx, &wh); err != nil {
		return nil, fmt.Errorf("failed to add working hours: %w", err)
	}
	return &wh, nil
}

func (s *DefaultScheduleService) UpdateWorkingHours(ctx context.Context, wh models.WorkingHours) (*models.WorkingHours, error) {
	if wh.ID == "" {
		return nil, fmt.Errorf("working hours id is required")
	}
	if err := validateWorkingHours(wh); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateWorkingHours(ctx, &wh); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update working hours: %w", err)
	}
	return &wh, nil
}

func (s *DefaultScheduleService) DeleteWorkingHours(ctx context.Context, id string) error {
	if err := s.Repo.DeleteWorkingHours(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete working hours: %w", err)
	}
	return nil
}

func (s *DefaultScheduleService) DaysOff(ctx context.Context) ([]models.DayOff, error) {
	days, err := s.Repo.GetDaysOff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch days off: %w", err)
	}
	return days, nil
}

func (s *DefaultScheduleService) AddDayOff(ctx context.Context, dayOfWeek string) (*models.DayOff, error) {
	if !validWeekday(dayOfWeek) {
		return nil, ErrInvalidWeekday
	}
	d := &models.DayOff{ID: uuid.New().String(), DayOfWeek: dayOfWeek}
	if err := s.Repo.AddDayOff(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to add day off: %w", err)
	}
	return d, nil
}

func (s *DefaultScheduleService) DeleteDayOff(ctx context.Context, dayOfWeek string) error {
	if !validWeekday(dayOfWeek) {
		return ErrInvalidWeekday
	}
	if err := s.Repo.DeleteDayOffByWeekday(ctx, dayOfWeek); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete day off: %w", err)
	}
	return nil
}

func (s *DefaultScheduleService) Vacations(ctx context.Context) ([]models.Vacation, error) {
	vacations, err := s.Repo.GetVacationsEndingAfter(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vacations: %w", err)
	}
	return vacations, nil
}

func validateVacation(v models.Vacation) error {
	if !validDate(v.StartDate) || !validDate(v.EndDate) {
		return fmt.Errorf("dates must be YYYY-MM-DD")
	}
	if v.StartDate > v.EndDate {
		return fmt.Errorf("vacation cannot end before it starts")
	}
	return nil
}

func (s *DefaultScheduleService) AddVacation(ctx context.Context, v models.Vacation) (*models.Vacation, error) {
	if err := validateVacation(v); err != nil {
		return nil, err
	}
	v.ID = uuid.New().String()
	if err := s.Repo.AddVacation(ctx, &v); err != nil {
		return nil, fmt.Errorf("failed to add vacation: %w", err)
	}
	return &v, nil
}

func (s *DefaultScheduleService) UpdateVacation(ctx context.Context, v models.Vacation) (*models.Vacation, error) {
	if v.ID == "" {
		return nil, fmt.Errorf("vacation id is required")
	}
	if err := validateVacation(v); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateVacation(ctx, &v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update vacation: %w", err)
	}
	return &v, nil
}

func (s *DefaultScheduleService) DeleteVacation(ctx context.Context, id string) error {
	if err := s.Repo.DeleteVacation(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete vacation: %w", err)
	}
	return nil
}
