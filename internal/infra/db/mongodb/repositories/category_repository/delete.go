package category_repository

import (
	"context"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteCategoryRepository struct {
	Db *mongo.Database
}

func NewDeleteCategoryRepository(db *mongo.Database) *DeleteCategoryRepository {
	return &DeleteCategoryRepository{
		Db: db,
	}
}

// Delete removes the category only. Expenses referencing it keep their
// dangling category_id and render as "Uncategorized".
func (r *DeleteCategoryRepository) Delete(categoryId primitive.ObjectID) error {
	collection := r.Db.Collection("categories")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": categoryId})
	return err
}
