package factory

import (
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/category_repository"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/user_repository"
	controllers "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/controllers/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeRegisterController(db *mongo.Database) *controllers.RegisterController {
	createUser := user_repository.NewCreateUserRepository(db)
	findUserByEmail := user_repository.NewFindUserByEmailRepository(db)
	createCategories := category_repository.NewCreateCategoriesRepository(db)
	return controllers.NewRegisterController(createUser, findUserByEmail, createCategories)
}

func MakeLoginController(db *mongo.Database) *controllers.LoginController {
	findUserByEmail := user_repository.NewFindUserByEmailRepository(db)
	return controllers.NewLoginController(findUserByEmail)
}

func MakeLogoutController() *controllers.LogoutController {
	return controllers.NewLogoutController()
}
