package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseCategory is the joined category view embedded in expense
// responses. It is resolved in memory at read time and never persisted.
type ExpenseCategory struct {
	Id   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

type Expense struct {
	Id          primitive.ObjectID  `json:"id" bson:"_id"`
	UserId      primitive.ObjectID  `json:"userId" bson:"user_id"`
	Amount      float64             `json:"amount" bson:"amount"`
	Date        time.Time           `json:"date" bson:"date"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	CategoryId  *primitive.ObjectID `json:"categoryId,omitempty" bson:"category_id,omitempty"`
	Category    *ExpenseCategory    `json:"category,omitempty" bson:"-"`
	CreatedAt   time.Time           `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updated_at"`
}
