package routes

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/adapters"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/factory"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func CategoryRoutes(server *http.ServeMux, db *mongo.Database) {
	findUserById := user_repository.NewFindUserByIdRepository(db)

	server.Handle("GET /categories", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCategoriesController(db)),
		findUserById,
	))

	server.Handle("POST /categories", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateCategoryController(db)),
		findUserById,
	))

	server.Handle("PUT /categories/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateCategoryController(db)),
		findUserById,
	))

	server.Handle("DELETE /categories/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteCategoryController(db)),
		findUserById,
	))
}
