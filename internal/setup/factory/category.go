package factory

import (
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/category_repository"
	controllers "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/controllers/category"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetCategoriesController(db *mongo.Database) *controllers.GetCategoriesController {
	findCategoriesByUserId := category_repository.NewFindCategoriesByUserIdRepository(db)
	return controllers.NewGetCategoriesController(findCategoriesByUserId)
}

func MakeCreateCategoryController(db *mongo.Database) *controllers.CreateCategoryController {
	createCategory := category_repository.NewCreateCategoryRepository(db)
	return controllers.NewCreateCategoryController(createCategory)
}

func MakeUpdateCategoryController(db *mongo.Database) *controllers.UpdateCategoryController {
	updateCategory := category_repository.NewUpdateCategoryRepository(db)
	findCategoryById := category_repository.NewFindCategoryByIdRepository(db)
	return controllers.NewUpdateCategoryController(updateCategory, findCategoryById)
}

func MakeDeleteCategoryController(db *mongo.Database) *controllers.DeleteCategoryController {
	deleteCategory := category_repository.NewDeleteCategoryRepository(db)
	findCategoryById := category_repository.NewFindCategoryByIdRepository(db)
	return controllers.NewDeleteCategoryController(deleteCategory, findCategoryById)
}
