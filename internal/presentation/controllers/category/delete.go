package category

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteCategoryController struct {
	DeleteCategoryRepository   usecase.DeleteCategoryRepository
	FindCategoryByIdRepository usecase.FindCategoryByIdRepository
}

func NewDeleteCategoryController(
	deleteCategory usecase.DeleteCategoryRepository,
	findCategoryById usecase.FindCategoryByIdRepository,
) *DeleteCategoryController {
	return &DeleteCategoryController{
		DeleteCategoryRepository:   deleteCategory,
		FindCategoryByIdRepository: findCategoryById,
	}
}

type DeleteResponse struct {
	Id primitive.ObjectID `json:"id"`
}

func (c *DeleteCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	// Expenses referencing this category are left alone; their reference
	// dangles and reads resolve it to "Uncategorized".
	if err := c.DeleteCategoryRepository.Delete(categoryId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&DeleteResponse{Id: categoryId}, http.StatusOK)
}
