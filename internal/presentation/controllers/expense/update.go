package expense

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateExpenseController struct {
	UpdateExpenseRepository   usecase.UpdateExpenseRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
	Validate                  *validator.Validate
}

func NewUpdateExpenseController(
	updateExpense usecase.UpdateExpenseRepository,
	findExpenseById usecase.FindExpenseByIdRepository,
) *UpdateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateExpenseController{
		UpdateExpenseRepository:   updateExpense,
		FindExpenseByIdRepository: findExpenseById,
		Validate:                  validate,
	}
}

// UpdateExpenseBody uses pointer fields: only supplied fields overwrite
// the stored record. An explicit empty categoryId clears the reference;
// omitting it preserves the current one.
type UpdateExpenseBody struct {
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
	CategoryId  *string  `json:"categoryId" validate:"omitempty,hexadecimal,len=24"`
}

func (c *UpdateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateExpenseBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusBadRequest)
	}

	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expense id format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserIdByHeader(r.Header)
	if errResponse != nil {
		return errResponse
	}

	expense, err := c.FindExpenseByIdRepository.Find(expenseId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	if expense == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "expense not found",
		}, http.StatusNotFound)
	}

	if expense.UserId != userId {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not authorized",
		}, http.StatusUnauthorized)
	}

	if body.Amount != nil {
		expense.Amount = *body.Amount
	}
	if body.Date != nil {
		date, _ := time.Parse("2006-01-02", *body.Date)
		expense.Date = date
	}
	if body.Description != nil {
		expense.Description = *body.Description
	}
	if body.CategoryId != nil {
		if *body.CategoryId == "" {
			expense.CategoryId = nil
		} else {
			categoryId, err := primitive.ObjectIDFromHex(*body.CategoryId)
			if err != nil {
				return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
					Error: "invalid category id format",
				}, http.StatusBadRequest)
			}
			expense.CategoryId = &categoryId
		}
	}

	if err := c.UpdateExpenseRepository.Update(expense); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expense, http.StatusOK)
}
