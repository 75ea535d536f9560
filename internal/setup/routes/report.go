package routes

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/adapters"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/factory"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func ReportRoutes(server *http.ServeMux, db *mongo.Database) {
	findUserById := user_repository.NewFindUserByIdRepository(db)

	server.Handle("GET /reports/summary", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetSummaryController(db)),
		findUserById,
	))

	server.Handle("GET /reports/monthly", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetMonthlyReportController(db)),
		findUserById,
	))
}
