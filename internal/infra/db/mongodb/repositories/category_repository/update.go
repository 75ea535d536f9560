package category_repository

import (
	"context"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateCategoryRepository struct {
	Db *mongo.Database
}

func NewUpdateCategoryRepository(db *mongo.Database) *UpdateCategoryRepository {
	return &UpdateCategoryRepository{
		Db: db,
	}
}

func (r *UpdateCategoryRepository) Update(category *models.Category) error {
	collection := r.Db.Collection("categories")

	filter := bson.M{"_id": category.Id}
	update := bson.M{
		"$set": bson.M{
			"name":       category.Name,
			"budget":     category.Budget,
			"updated_at": time.Now(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, filter, update)
	return err
}
