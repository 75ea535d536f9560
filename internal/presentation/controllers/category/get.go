package category

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
)

type GetCategoriesController struct {
	FindCategoriesByUserIdRepository usecase.FindCategoriesByUserIdRepository
}

func NewGetCategoriesController(findCategoriesByUserId usecase.FindCategoriesByUserIdRepository) *GetCategoriesController {
	return &GetCategoriesController{
		FindCategoriesByUserIdRepository: findCategoriesByUserId,
	}
}

func (c *GetCategoriesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdByHeader(r.Header)
	if errResponse != nil {
		return errResponse
	}

	categories, err := c.FindCategoriesByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(categories, http.StatusOK)
}
