package usecase

import (
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseFilterParams scope every expense query to one user; the remaining
// fields are optional and combine with AND semantics. From and To are
// inclusive date bounds.
type ExpenseFilterParams struct {
	UserId     primitive.ObjectID
	From       *time.Time
	To         *time.Time
	CategoryId *primitive.ObjectID
}

type CreateExpenseRepository interface {
	Create(expense *models.Expense) (*models.Expense, error)
}

// FindExpensesRepository returns matches sorted by date descending.
type FindExpensesRepository interface {
	Find(filters *ExpenseFilterParams) ([]models.Expense, error)
}

// FindExpenseByIdRepository fetches by id alone; ownership is checked by
// the caller. Returns (nil, nil) when no expense matches.
type FindExpenseByIdRepository interface {
	Find(expenseId primitive.ObjectID) (*models.Expense, error)
}

type UpdateExpenseRepository interface {
	Update(expense *models.Expense) error
}

type DeleteExpenseRepository interface {
	Delete(expenseId primitive.ObjectID) error
}
