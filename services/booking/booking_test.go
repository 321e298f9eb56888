package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberbook/models"
)

type fakeAppointmentStore struct {
	byID          map[string]*models.Appointment
	cancellations []*models.CanceledAppointment
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{byID: map[string]*models.Appointment{}}
}

func (f *fakeAppointmentStore) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	return f.byID[id], nil
}

func (f *fakeAppointmentStore) Create(_ context.Context, appt *models.Appointment) error {
	f.byID[appt.ID] = appt
	return nil
}

func (f *fakeAppointmentStore) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeAppointmentStore) HasOverlap(_ context.Context, date, startTime, endTime string) (bool, error) {
	for _, a := range f.byID {
		if a.Date == date && a.StartTime < endTime && a.EndTime > startTime {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentStore) GetUpcomingByPhone(_ context.Context, phone, today, timeOfDay string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.byID {
		if a.Phone != phone {
			continue
		}
		if a.Date > today || (a.Date == today && a.StartTime > timeOfDay) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) CreateCancellation(_ context.Context, rec *models.CanceledAppointment) error {
	f.cancellations = append(f.cancellations, rec)
	return nil
}

type fakeTypeSource struct{}

func (fakeTypeSource) GetByName(_ context.Context, name string) (*models.AppointmentType, error) {
	if name == "haircut" {
		return &models.AppointmentType{Name: "haircut", DurationMinutes: 30, Cost: 80}, nil
	}
	return nil, nil
}

type fakeUserSource struct {
	users map[string]*models.User
}

func (f *fakeUserSource) GetByPhone(_ context.Context, phone string) (*models.User, error) {
	return f.users[phone], nil
}

type fakeLocker struct {
	locks int
}

func (f *fakeLocker) Lock(context.Context, string) (func(), error) {
	f.locks++
	return func() {}, nil
}

func newTestService(store *fakeAppointmentStore) (*DefaultBookingService, *fakeLocker) {
	locker := &fakeLocker{}
	svc := &DefaultBookingService{
		Appointments: store,
		Types:        fakeTypeSource{},
		Users:        &fakeUserSource{users: map[string]*models.User{}},
		Locker:       locker,
		Location:     time.UTC,
		Now:          func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) },
	}
	return svc, locker
}

func TestCreate_DerivesEndTime(t *testing.T) {
	store := newFakeAppointmentStore()
	svc, locker := newTestService(store)

	appt, err := svc.Create(context.Background(), CreateRequest{
		ID: "a1", Phone: "0501234567", Type: "haircut", Date: "2024-03-05", StartTime: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.EndTime != "10:30" {
		t.Fatalf("expected end time 10:30, got %s", appt.EndTime)
	}
	if appt.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}
	if locker.locks != 1 {
		t.Fatalf("expected the date lock to be taken once, got %d", locker.locks)
	}
	if store.byID["a1"] == nil {
		t.Fatal("appointment not persisted")
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	store := newFakeAppointmentStore()
	store.byID["a1"] = &models.Appointment{ID: "a1", Phone: "111", Date: "2024-03-05", StartTime: "09:00", EndTime: "09:30"}
	svc, _ := newTestService(store)

	_, err := svc.Create(context.Background(), CreateRequest{
		ID: "a1", Phone: "222", Type: "haircut", Date: "2024-03-06", StartTime: "10:00",
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	// Existing record untouched.
	if store.byID["a1"].Phone != "111" {
		t.Fatal("existing appointment was modified")
	}
}

func TestCreate_UnknownType(t *testing.T) {
	svc, _ := newTestService(newFakeAppointmentStore())

	_, err := svc.Create(context.Background(), CreateRequest{
		ID: "a1", Phone: "111", Type: "perm", Date: "2024-03-05", StartTime: "10:00",
	})
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestCreate_SlotTaken(t *testing.T) {
	store := newFakeAppointmentStore()
	store.byID["a1"] = &models.Appointment{ID: "a1", Date: "2024-03-05", StartTime: "10:00", EndTime: "10:30"}
	svc, _ := newTestService(store)

	// 10:15 overlaps the existing 10:00-10:30 booking.
	_, err := svc.Create(context.Background(), CreateRequest{
		ID: "a2", Phone: "222", Type: "haircut", Date: "2024-03-05", StartTime: "10:15",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Back-to-back is fine.
	if _, err := svc.Create(context.Background(), CreateRequest{
		ID: "a3", Phone: "222", Type: "haircut", Date: "2024-03-05", StartTime: "10:30",
	}); err != nil {
		t.Fatalf("back-to-back booking should succeed, got %v", err)
	}
}

func TestCancel_Flow(t *testing.T) {
	store := newFakeAppointmentStore()
	store.byID["a1"] = &models.Appointment{
		ID: "a1", Phone: "0501234567", Type: "haircut",
		Date: "2024-03-05", StartTime: "10:00", EndTime: "10:30",
	}
	svc, _ := newTestService(store)
	svc.Users = &fakeUserSource{users: map[string]*models.User{
		"0501234567": {Name: "Dana", Phone: "0501234567"},
	}}

	rec, err := svc.Cancel(context.Background(), "a1", "0501234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.UserName != "Dana" {
		t.Fatalf("expected snapshot to carry the user name, got %q", rec.UserName)
	}
	if rec.Date != "2024-03-05" || rec.StartTime != "10:00" {
		t.Fatalf("snapshot does not match the appointment: %+v", rec)
	}
	if rec.ID == "a1" {
		t.Fatal("cancellation record must get its own id")
	}
	if store.byID["a1"] != nil {
		t.Fatal("appointment not deleted")
	}

	// Second cancel on the same id: gone.
	if _, err := svc.Cancel(context.Background(), "a1", "0501234567"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat cancel, got %v", err)
	}
}

func TestCancel_PhoneMismatch(t *testing.T) {
	store := newFakeAppointmentStore()
	store.byID["a1"] = &models.Appointment{ID: "a1", Phone: "0501234567", Date: "2024-03-05", StartTime: "10:00", EndTime: "10:30"}
	svc, _ := newTestService(store)

	if _, err := svc.Cancel(context.Background(), "a1", "0507654321"); !errors.Is(err, ErrPhoneMismatch) {
		t.Fatalf("expected ErrPhoneMismatch, got %v", err)
	}
	if store.byID["a1"] == nil {
		t.Fatal("appointment must survive a rejected cancel")
	}
}

func TestCancel_UnknownUserNamePlaceholder(t *testing.T) {
	store := newFakeAppointmentStore()
	store.byID["a1"] = &models.Appointment{ID: "a1", Phone: "0501234567", Date: "2024-03-05", StartTime: "10:00", EndTime: "10:30"}
	svc, _ := newTestService(store)

	rec, err := svc.Cancel(context.Background(), "a1", "0501234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.UserName != "Unknown" {
		t.Fatalf("expected placeholder name, got %q", rec.UserName)
	}
}

func TestUpcomingForPhone_FiltersStarted(t *testing.T) {
	store := newFakeAppointmentStore()
	store.byID["past"] = &models.Appointment{ID: "past", Phone: "p", Date: "2024-02-28", StartTime: "10:00", EndTime: "10:30"}
	store.byID["earlier-today"] = &models.Appointment{ID: "earlier-today", Phone: "p", Date: "2024-03-01", StartTime: "09:00", EndTime: "09:30"}
	store.byID["later-today"] = &models.Appointment{ID: "later-today", Phone: "p", Date: "2024-03-01", StartTime: "11:00", EndTime: "11:30"}
	store.byID["future"] = &models.Appointment{ID: "future", Phone: "p", Date: "2024-03-09", StartTime: "08:00", EndTime: "08:30"}
	svc, _ := newTestService(store) // now = 2024-03-01 10:00

	appts, err := svc.UpcomingForPhone(context.Background(), "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("expected 2 upcoming appointments, got %d", len(appts))
	}
	for _, a := range appts {
		if a.ID == "past" || a.ID == "earlier-today" {
			t.Fatalf("appointment %s already started and should be excluded", a.ID)
		}
	}
}
