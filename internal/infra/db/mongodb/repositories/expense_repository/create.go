package expense_repository

import (
	"context"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseRepository struct {
	Db *mongo.Database
}

func NewCreateExpenseRepository(db *mongo.Database) *CreateExpenseRepository {
	return &CreateExpenseRepository{
		Db: db,
	}
}

func (r *CreateExpenseRepository) Create(expense *models.Expense) (*models.Expense, error) {
	collection := r.Db.Collection("expenses")

	expenseToSave := &models.Expense{
		Id:          primitive.NewObjectID(),
		UserId:      expense.UserId,
		Amount:      expense.Amount,
		Date:        expense.Date,
		Description: expense.Description,
		CategoryId:  expense.CategoryId,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, expenseToSave)
	if err != nil {
		return nil, err
	}

	return expenseToSave, nil
}
