package expense_repository

import (
	"context"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindExpensesRepository struct {
	Db *mongo.Database
}

func NewFindExpensesRepository(db *mongo.Database) *FindExpensesRepository {
	return &FindExpensesRepository{
		Db: db,
	}
}

func (r *FindExpensesRepository) Find(filters *usecase.ExpenseFilterParams) ([]models.Expense, error) {
	collection := r.Db.Collection("expenses")

	filter := BuildExpenseFilter(filters)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}

	expenses := []models.Expense{}
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}

// BuildExpenseFilter translates the optional date bounds and category into
// a bson filter. From and To are both inclusive.
func BuildExpenseFilter(filters *usecase.ExpenseFilterParams) bson.M {
	filter := bson.M{"user_id": filters.UserId}

	if filters.From != nil || filters.To != nil {
		dateFilter := bson.M{}
		if filters.From != nil {
			dateFilter["$gte"] = *filters.From
		}
		if filters.To != nil {
			dateFilter["$lte"] = *filters.To
		}
		filter["date"] = dateFilter
	}

	if filters.CategoryId != nil {
		filter["category_id"] = *filters.CategoryId
	}

	return filter
}
