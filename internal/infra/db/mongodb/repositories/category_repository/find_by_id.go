package category_repository

import (
	"context"
	"errors"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindCategoryByIdRepository struct {
	Db *mongo.Database
}

func NewFindCategoryByIdRepository(db *mongo.Database) *FindCategoryByIdRepository {
	return &FindCategoryByIdRepository{
		Db: db,
	}
}

// Find fetches by id only; the caller is responsible for the owner check.
func (r *FindCategoryByIdRepository) Find(categoryId primitive.ObjectID) (*models.Category, error) {
	collection := r.Db.Collection("categories")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var category models.Category
	err := collection.FindOne(ctx, bson.M{"_id": categoryId}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}
