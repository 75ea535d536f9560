package helpers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExpenseQueryParams struct {
	From     string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Category string `json:"category" validate:"omitempty,hexadecimal,len=24"`
}

// GetExpenseFilterByQueries parses the optional from/to/category query
// parameters into repository filter params scoped to userId. Dates are
// date-only and both bounds are inclusive.
func GetExpenseFilterByQueries(urlQueries *url.Values, userId primitive.ObjectID, validate *validator.Validate) (*usecase.ExpenseFilterParams, *presentationProtocols.HttpResponse) {
	params := &ExpenseQueryParams{
		From:     urlQueries.Get("from"),
		To:       urlQueries.Get("to"),
		Category: urlQueries.Get("category"),
	}

	if err := validate.Struct(params); err != nil {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: GetErrorMessages(validate, err),
		}, http.StatusBadRequest)
	}

	filters := &usecase.ExpenseFilterParams{
		UserId: userId,
	}

	if params.From != "" {
		from, _ := time.Parse("2006-01-02", params.From)
		filters.From = &from
	}

	if params.To != "" {
		to, _ := time.Parse("2006-01-02", params.To)
		filters.To = &to
	}

	if params.Category != "" {
		categoryId, err := primitive.ObjectIDFromHex(params.Category)
		if err != nil {
			return nil, CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid category id format",
			}, http.StatusBadRequest)
		}
		filters.CategoryId = &categoryId
	}

	return filters, nil
}
