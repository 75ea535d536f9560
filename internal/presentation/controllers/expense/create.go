package expense

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateExpenseController struct {
	CreateExpenseRepository usecase.CreateExpenseRepository
	Validate                *validator.Validate
}

func NewCreateExpenseController(createExpense usecase.CreateExpenseRepository) *CreateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateExpenseController{
		CreateExpenseRepository: createExpense,
		Validate:                validate,
	}
}

type CreateExpenseBody struct {
	Amount      float64 `json:"amount" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"omitempty,max=255"`
	CategoryId  string  `json:"categoryId" validate:"omitempty,hexadecimal,len=24"`
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateExpenseBody
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

	userId, errResponse := helpers.GetUserIdByHeader(r.Header)
	if errResponse != nil {
		return errResponse
	}

	date, _ := time.Parse("2006-01-02", body.Date)

	var categoryId *primitive.ObjectID
	if body.CategoryId != "" {
		parsed, err := primitive.ObjectIDFromHex(body.CategoryId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid category id format",
			}, http.StatusBadRequest)
		}
		categoryId = &parsed
	}

	expense, err := c.CreateExpenseRepository.Create(&models.Expense{
		UserId:      userId,
		Amount:      body.Amount,
		Date:        date,
		Description: body.Description,
		CategoryId:  categoryId,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expense, http.StatusCreated)
}
