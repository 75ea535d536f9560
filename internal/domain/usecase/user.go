package usecase

import (
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRepository interface {
	Create(user *models.User) (*models.User, error)
}

// FindUserByEmailRepository returns (nil, nil) when no user matches.
type FindUserByEmailRepository interface {
	Find(email string) (*models.User, error)
}

// FindUserByIdRepository returns (nil, nil) when no user matches.
type FindUserByIdRepository interface {
	Find(userId primitive.ObjectID) (*models.User, error)
}
