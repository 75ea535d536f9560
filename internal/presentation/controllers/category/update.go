package category

import (
	"encoding/json"
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateCategoryController struct {
	UpdateCategoryRepository   usecase.UpdateCategoryRepository
	FindCategoryByIdRepository usecase.FindCategoryByIdRepository
	Validate                   *validator.Validate
}

func NewUpdateCategoryController(
	updateCategory usecase.UpdateCategoryRepository,
	findCategoryById usecase.FindCategoryByIdRepository,
) *UpdateCategoryController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateCategoryController{
		UpdateCategoryRepository:   updateCategory,
		FindCategoryByIdRepository: findCategoryById,
		Validate:                   validate,
	}
}

// UpdateCategoryBody uses pointer fields: only supplied fields overwrite
// the stored record, so an omitted field can never null out a value.
type UpdateCategoryBody struct {
	Name   *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Budget *float64 `json:"budget"`
}

func (c *UpdateCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateCategoryBody
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

	categoryId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid category id format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserIdByHeader(r.Header)
	if errResponse != nil {
		return errResponse
	}

	category, err := c.FindCategoryByIdRepository.Find(categoryId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	if category == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "category not found",
		}, http.StatusNotFound)
	}

	if category.UserId != userId {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not authorized",
		}, http.StatusUnauthorized)
	}

	if body.Name != nil && *body.Name != "" {
		category.Name = *body.Name
	}
	if body.Budget != nil {
		category.Budget = *body.Budget
	}

	if err := c.UpdateCategoryRepository.Update(category); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(category, http.StatusOK)
}
