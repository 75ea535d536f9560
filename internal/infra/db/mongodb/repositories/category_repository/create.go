package category_repository

import (
	"context"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateCategoryRepository struct {
	Db *mongo.Database
}

func NewCreateCategoryRepository(db *mongo.Database) *CreateCategoryRepository {
	return &CreateCategoryRepository{
		Db: db,
	}
}

func (r *CreateCategoryRepository) Create(category *models.Category) (*models.Category, error) {
	collection := r.Db.Collection("categories")

	categoryToSave := &models.Category{
		Id:        primitive.NewObjectID(),
		UserId:    category.UserId,
		Name:      category.Name,
		Budget:    category.Budget,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, categoryToSave)
	if err != nil {
		return nil, err
	}

	return categoryToSave, nil
}
