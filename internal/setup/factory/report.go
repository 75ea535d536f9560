package factory

import (
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/category_repository"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/expense_repository"
	controllers "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/controllers/report"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetSummaryController(db *mongo.Database) *controllers.GetSummaryController {
	findExpenses := expense_repository.NewFindExpensesRepository(db)
	findCategoriesByUserId := category_repository.NewFindCategoriesByUserIdRepository(db)
	return controllers.NewGetSummaryController(findExpenses, findCategoriesByUserId)
}

func MakeGetMonthlyReportController(db *mongo.Database) *controllers.GetMonthlyReportController {
	findExpenses := expense_repository.NewFindExpensesRepository(db)
	return controllers.NewGetMonthlyReportController(findExpenses)
}
