package user_repository

import (
	"context"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserRepository struct {
	Db *mongo.Database
}

func NewCreateUserRepository(db *mongo.Database) *CreateUserRepository {
	return &CreateUserRepository{
		Db: db,
	}
}

func (r *CreateUserRepository) Create(user *models.User) (*models.User, error) {
	collection := r.Db.Collection("users")

	userToSave := &models.User{
		Id:        primitive.NewObjectID(),
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, userToSave)
	if err != nil {
		return nil, err
	}

	return userToSave, nil
}
