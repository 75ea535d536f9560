package expense_repository

import (
	"context"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateExpenseRepository struct {
	Db *mongo.Database
}

func NewUpdateExpenseRepository(db *mongo.Database) *UpdateExpenseRepository {
	return &UpdateExpenseRepository{
		Db: db,
	}
}

// Update writes the full document state assembled by the controller. A
// nil CategoryId unsets the stored reference.
func (r *UpdateExpenseRepository) Update(expense *models.Expense) error {
	collection := r.Db.Collection("expenses")

	filter := bson.M{"_id": expense.Id}
	set := bson.M{
		"amount":      expense.Amount,
		"date":        expense.Date,
		"description": expense.Description,
		"updated_at":  time.Now(),
	}

	update := bson.M{"$set": set}
	if expense.CategoryId != nil {
		set["category_id"] = *expense.CategoryId
	} else {
		update["$unset"] = bson.M{"category_id": ""}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, filter, update)
	return err
}
