package factory

import (
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/category_repository"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/expense_repository"
	controllers "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/controllers/expense"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetExpensesController(db *mongo.Database) *controllers.GetExpensesController {
	findExpenses := expense_repository.NewFindExpensesRepository(db)
	findCategoriesByUserId := category_repository.NewFindCategoriesByUserIdRepository(db)
	return controllers.NewGetExpensesController(findExpenses, findCategoriesByUserId)
}

func MakeCreateExpenseController(db *mongo.Database) *controllers.CreateExpenseController {
	createExpense := expense_repository.NewCreateExpenseRepository(db)
	return controllers.NewCreateExpenseController(createExpense)
}

func MakeUpdateExpenseController(db *mongo.Database) *controllers.UpdateExpenseController {
	updateExpense := expense_repository.NewUpdateExpenseRepository(db)
	findExpenseById := expense_repository.NewFindExpenseByIdRepository(db)
	return controllers.NewUpdateExpenseController(updateExpense, findExpenseById)
}

func MakeDeleteExpenseController(db *mongo.Database) *controllers.DeleteExpenseController {
	deleteExpense := expense_repository.NewDeleteExpenseRepository(db)
	findExpenseById := expense_repository.NewFindExpenseByIdRepository(db)
	return controllers.NewDeleteExpenseController(deleteExpense, findExpenseById)
}

func MakeExportExpensesController(db *mongo.Database) *controllers.ExportExpensesController {
	findExpenses := expense_repository.NewFindExpensesRepository(db)
	findCategoriesByUserId := category_repository.NewFindCategoriesByUserIdRepository(db)
	return controllers.NewExportExpensesController(findExpenses, findCategoriesByUserId)
}
