package expense

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetExpensesController struct {
	FindExpensesRepository           usecase.FindExpensesRepository
	FindCategoriesByUserIdRepository usecase.FindCategoriesByUserIdRepository
	Validate                         *validator.Validate
}

func NewGetExpensesController(
	findExpenses usecase.FindExpensesRepository,
	findCategoriesByUserId usecase.FindCategoriesByUserIdRepository,
) *GetExpensesController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetExpensesController{
		FindExpensesRepository:           findExpenses,
		FindCategoriesByUserIdRepository: findCategoriesByUserId,
		Validate:                         validate,
	}
}

func (c *GetExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdByHeader(r.Header)
	if errResponse != nil {
		return errResponse
	}

	filters, errResponse := helpers.GetExpenseFilterByQueries(&r.UrlParams, userId, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	expenses, err := c.FindExpensesRepository.Find(filters)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	if err := c.resolveCategories(expenses, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expenses, http.StatusOK)
}

// resolveCategories joins each expense's category name in memory. A
// dangling or absent reference leaves the joined field nil, which clients
// render as "Uncategorized".
func (c *GetExpensesController) resolveCategories(expenses []models.Expense, userId primitive.ObjectID) error {
	categories, err := c.FindCategoriesByUserIdRepository.Find(userId)
	if err != nil {
		return err
	}

	categoryMap := make(map[primitive.ObjectID]*models.Category, len(categories))
	for i := range categories {
		categoryMap[categories[i].Id] = &categories[i]
	}

	for i := range expenses {
		if expenses[i].CategoryId == nil {
			continue
		}
		if category, ok := categoryMap[*expenses[i].CategoryId]; ok {
			expenses[i].Category = &models.ExpenseCategory{
				Id:   category.Id,
				Name: category.Name,
			}
		}
	}

	return nil
}
