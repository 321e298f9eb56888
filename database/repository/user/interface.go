// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository covers both customer accounts (keyed by phone) and the
// owner account (keyed by username). Point lookups return (nil, nil)
// when nothing matches.
type UserRepository interface {
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	AllPhones(ctx context.Context) ([]string, error)

	GetOwnerByUsername(ctx context.Context, username string) (*models.Owner, error)
	UpdateOwnerPassword(ctx context.Context, id, passwordHash string) error
}

type mongoUserRepo struct {
	usersColl  *mongo.Collection
	ownersColl *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{
		usersColl:  database.Collection("users"),
		ownersColl: database.Collection("owners"),
	}
}
