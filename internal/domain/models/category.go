package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	Id        primitive.ObjectID `json:"id" bson:"_id"`
	UserId    primitive.ObjectID `json:"userId" bson:"user_id"`
	Name      string             `json:"name" bson:"name"`
	Budget    float64            `json:"budget" bson:"budget"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// DefaultCategoryNames are seeded for every new user, each with budget 0.
var DefaultCategoryNames = []string{"Food", "Transport", "Utilities", "Entertainment", "Health"}
