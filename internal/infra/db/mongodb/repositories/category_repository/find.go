package category_repository

import (
	"context"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindCategoriesByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindCategoriesByUserIdRepository(db *mongo.Database) *FindCategoriesByUserIdRepository {
	return &FindCategoriesByUserIdRepository{
		Db: db,
	}
}

func (r *FindCategoriesByUserIdRepository) Find(userId primitive.ObjectID) ([]models.Category, error) {
	collection := r.Db.Collection("categories")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId})
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}
