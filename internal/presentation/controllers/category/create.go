package category

import (
	"encoding/json"
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateCategoryController struct {
	CreateCategoryRepository usecase.CreateCategoryRepository
	Validate                 *validator.Validate
}

func NewCreateCategoryController(createCategory usecase.CreateCategoryRepository) *CreateCategoryController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateCategoryController{
		CreateCategoryRepository: createCategory,
		Validate:                 validate,
	}
}

type CreateCategoryBody struct {
	Name   string  `json:"name" validate:"required,min=1,max=255"`
	Budget float64 `json:"budget" validate:"omitempty"`
}

func (c *CreateCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateCategoryBody
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

	category, err := c.CreateCategoryRepository.Create(&models.Category{
		UserId: userId,
		Name:   body.Name,
		Budget: body.Budget,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(category, http.StatusCreated)
}
