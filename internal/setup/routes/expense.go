package routes

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/adapters"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/factory"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func ExpenseRoutes(server *http.ServeMux, db *mongo.Database) {
	findUserById := user_repository.NewFindUserByIdRepository(db)

	server.Handle("GET /expenses", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetExpensesController(db)),
		findUserById,
	))

	server.Handle("GET /expenses/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportExpensesController(db)),
		findUserById,
	))

	server.Handle("POST /expenses", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateExpenseController(db)),
		findUserById,
	))

	server.Handle("PUT /expenses/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateExpenseController(db)),
		findUserById,
	))

	server.Handle("DELETE /expenses/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteExpenseController(db)),
		findUserById,
	))
}
