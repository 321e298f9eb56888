package catalog

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/models"
)

type fakeTypeRepo struct {
	types map[string]*models.AppointmentType // by name
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{types: map[string]*models.AppointmentType{}}
}

func (f *fakeTypeRepo) GetAll(context.Context) ([]models.AppointmentType, error) {
	var out []models.AppointmentType
	for _, t := range f.types {
		out = append(out, *t)
	}
	return out, nil
}
func (f *fakeTypeRepo) GetByName(_ context.Context, name string) (*models.AppointmentType, error) {
	return f.types[name], nil
}
func (f *fakeTypeRepo) Create(_ context.Context, t *models.AppointmentType) error {
	f.types[t.Name] = t
	return nil
}
func (f *fakeTypeRepo) Update(_ context.Context, t *models.AppointmentType) error {
	for name, existing := range f.types {
		if existing.ID == t.ID {
			delete(f.types, name)
			f.types[t.Name] = t
			return nil
		}
	}
	return mongo.ErrNoDocuments
}
func (f *fakeTypeRepo) Delete(_ context.Context, id string) error {
	for name, existing := range f.types {
		if existing.ID == id {
			delete(f.types, name)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func TestCreateType(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeTypeRepo()}

	created, err := svc.Create(context.Background(), models.AppointmentType{
		Name: "haircut", DurationMinutes: 30, Cost: 80,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}

	if _, err := svc.Create(context.Background(), models.AppointmentType{
		Name: "haircut", DurationMinutes: 45, Cost: 100,
	}); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestCreateType_Validation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeTypeRepo()}

	bad := []models.AppointmentType{
		{Name: "", DurationMinutes: 30},
		{Name: "trim", DurationMinutes: 0},
		{Name: "trim", DurationMinutes: -15},
		{Name: "trim", DurationMinutes: 30, Cost: -1},
	}
	for _, tc := range bad {
		if _, err := svc.Create(context.Background(), tc); err == nil {
			t.Errorf("expected validation error for %+v", tc)
		}
	}
}

func TestUpdateType(t *testing.T) {
	repo := newFakeTypeRepo()
	svc := &DefaultCatalogService{Repo: repo}

	haircut, _ := svc.Create(context.Background(), models.AppointmentType{
		Name: "haircut", DurationMinutes: 30, Cost: 80,
	})
	shave, _ := svc.Create(context.Background(), models.AppointmentType{
		Name: "shave", DurationMinutes: 15, Cost: 40,
	})

	// Renaming onto an existing name is rejected.
	shave.Name = "haircut"
	if _, err := svc.Update(context.Background(), *shave); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}

	// Updating a type in place, keeping its own name, is fine.
	haircut.Cost = 90
	updated, err := svc.Update(context.Background(), *haircut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Cost != 90 {
		t.Fatalf("expected cost 90, got %v", updated.Cost)
	}

	if _, err := svc.Update(context.Background(), models.AppointmentType{
		ID: "missing", Name: "beard", DurationMinutes: 20,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteType(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeTypeRepo()}
	created, _ := svc.Create(context.Background(), models.AppointmentType{
		Name: "haircut", DurationMinutes: 30,
	})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
