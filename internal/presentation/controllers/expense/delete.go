package expense

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteExpenseController struct {
	DeleteExpenseRepository   usecase.DeleteExpenseRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewDeleteExpenseController(
	deleteExpense usecase.DeleteExpenseRepository,
	findExpenseById usecase.FindExpenseByIdRepository,
) *DeleteExpenseController {
	return &DeleteExpenseController{
		DeleteExpenseRepository:   deleteExpense,
		FindExpenseByIdRepository: findExpenseById,
	}
}

type DeleteResponse struct {
	Id primitive.ObjectID `json:"id"`
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteExpenseRepository.Delete(expenseId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&DeleteResponse{Id: expenseId}, http.StatusOK)
}
