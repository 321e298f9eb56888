package user

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"barberbook/models"
	"barberbook/utils"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	passwords map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, passwords: map[string]string{}}
}

func (f *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*models.User, error) {
	return f.users[phone], nil
}
func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.users[u.Phone] = u
	return nil
}
func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	f.passwords[id] = hash
	return nil
}
func (f *fakeUserRepo) AllPhones(context.Context) ([]string, error) { return nil, nil }
func (f *fakeUserRepo) GetOwnerByUsername(context.Context, string) (*models.Owner, error) {
	return nil, nil
}
func (f *fakeUserRepo) UpdateOwnerPassword(context.Context, string, string) error { return nil }

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Dana", Phone: "0501234567", Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
	if resp.User.PasswordHash == "hunter2" {
		t.Fatal("password stored in the clear")
	}

	subject, role, err := utils.ExtractClaims(resp.Token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if subject != "0501234567" || role != "user" {
		t.Fatalf("unexpected claims: subject=%q role=%q", subject, role)
	}

	// Same phone again.
	if _, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Other", Phone: "0501234567", Password: "x",
	}); !errors.Is(err, ErrPhoneTaken) {
		t.Fatalf("expected ErrPhoneTaken, got %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	if _, err := svc.Register(context.Background(), RegisterRequest{Phone: "1"}); err == nil {
		t.Fatal("expected an error for missing fields")
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	repo.users["0501234567"] = &models.User{
		ID: "u1", Name: "Dana", Phone: "0501234567", PasswordHash: string(hash),
	}
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Login(context.Background(), "0501234567", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.User.Name != "Dana" {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}

	if _, err := svc.Login(context.Background(), "0501234567", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// Unknown phone gives the same error as a bad password.
	if _, err := svc.Login(context.Background(), "000", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGetByPhone(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["1"] = &models.User{ID: "u1", Phone: "1"}
	svc := &DefaultUserService{Repo: repo}

	if _, err := svc.GetByPhone(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetByPhone(context.Background(), "2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	exists, err := svc.PhoneExists(context.Background(), "1")
	if err != nil || !exists {
		t.Fatalf("expected phone to exist, got %v %v", exists, err)
	}
}
