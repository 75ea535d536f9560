package category_repository

import (
	"context"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateCategoriesRepository struct {
	Db *mongo.Database
}

func NewCreateCategoriesRepository(db *mongo.Database) *CreateCategoriesRepository {
	return &CreateCategoriesRepository{
		Db: db,
	}
}

func (r *CreateCategoriesRepository) CreateMany(categories []models.Category) error {
	collection := r.Db.Collection("categories")

	documents := make([]interface{}, len(categories))
	for i := range categories {
		categories[i].Id = primitive.NewObjectID()
		categories[i].CreatedAt = time.Now()
		categories[i].UpdatedAt = time.Now()
		documents[i] = categories[i]
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertMany(ctx, documents)
	return err
}
