package usecase

import (
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateCategoryRepository interface {
	Create(category *models.Category) (*models.Category, error)
}

// CreateCategoriesRepository inserts several categories at once, used for
// seeding a new user's defaults.
type CreateCategoriesRepository interface {
	CreateMany(categories []models.Category) error
}

type FindCategoriesByUserIdRepository interface {
	Find(userId primitive.ObjectID) ([]models.Category, error)
}

// FindCategoryByIdRepository fetches by id alone; ownership is checked by
// the caller so that "not found" and "not yours" stay distinguishable.
type FindCategoryByIdRepository interface {
	Find(categoryId primitive.ObjectID) (*models.Category, error)
}

type UpdateCategoryRepository interface {
	Update(category *models.Category) error
}

type DeleteCategoryRepository interface {
	Delete(categoryId primitive.ObjectID) error
}
