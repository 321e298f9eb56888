package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/database/repository/catalog"
	"barberbook/models"
)

var (
	// ErrNameTaken means another type already uses the name customers
	// would book by.
	ErrNameTaken = errors.New("an appointment type with this name already exists")

	// ErrNotFound means no type matches the id.
	ErrNotFound = errors.New("appointment type not found")
)

// CatalogService manages the bookable service types.
type CatalogService interface {
	List(ctx context.Context) ([]models.AppointmentType, error)
	Create(ctx context.Context, t models.AppointmentType) (*models.AppointmentType, error)
	Update(ctx context.Context, t models.AppointmentType) (*models.AppointmentType, error)
	Delete(ctx context.Context, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.AppointmentTypeRepository
}

func validateType(t models.AppointmentType) error {
	if t.Name == "" {
		return fmt.Errorf("type name is required")
	}
	if t.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if t.Cost < 0 {
		return fmt.Errorf("cost cannot be negative")
	}
	return nil
}

func (s *DefaultCatalogService) List(ctx context.Context) ([]models.AppointmentType, error) {
	types, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment types: %w", err)
	}
	return types, nil
}

func (s *DefaultCatalogService) Create(ctx context.Context, t models.AppointmentType) (*models.AppointmentType, error) {
	if err := validateType(t); err != nil {
		return nil, err
	}
	existing, err := s.Repo.GetByName(ctx, t.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check type name: %w", err)
	}
	if existing != nil {
		return nil, ErrNameTaken
	}
	t.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, &t); err != nil {
		return nil, fmt.Errorf("failed to create appointment type: %w", err)
	}
	return &t, nil
}

func (s *DefaultCatalogService) Update(ctx context.Context, t models.AppointmentType) (*models.AppointmentType, error) {
	if t.ID == "" {
		return nil, fmt.Errorf("type id is required")
	}
	if err := validateType(t); err != nil {
		return nil, err
	}
	// Renaming onto another type's name would make bookings ambiguous.
	existing, err := s.Repo.GetByName(ctx, t.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check type name: %w", err)
	}
	if existing != nil && existing.ID != t.ID {
		return nil, ErrNameTaken
	}
	if err := s.Repo.Update(ctx, &t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update appointment type: %w", err)
	}
	return &t, nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete appointment type: %w", err)
	}
	return nil
}
