package report

import (
	"net/http"
	"sort"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
)

// monthlyReportLimit caps the history at the 12 most recent months.
const monthlyReportLimit = 12

type GetMonthlyReportController struct {
	FindExpensesRepository usecase.FindExpensesRepository
}

func NewGetMonthlyReportController(findExpenses usecase.FindExpensesRepository) *GetMonthlyReportController {
	return &GetMonthlyReportController{
		FindExpensesRepository: findExpenses,
	}
}

type MonthlyGroupKey struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// MonthlyGroup keeps the _id wire name of the original aggregation output.
type MonthlyGroup struct {
	Id    MonthlyGroupKey `json:"_id"`
	Total float64         `json:"total"`
}

func (c *GetMonthlyReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdByHeader(r.Header)
	if errResponse != nil {
		return errResponse
	}

	expenses, err := c.FindExpensesRepository.Find(&usecase.ExpenseFilterParams{
		UserId: userId,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	totals := make(map[MonthlyGroupKey]float64)
	for _, expense := range expenses {
		key := MonthlyGroupKey{
			Month: int(expense.Date.Month()),
			Year:  expense.Date.Year(),
		}
		totals[key] += expense.Amount
	}

	groups := make([]MonthlyGroup, 0, len(totals))
	for key, total := range totals {
		groups = append(groups, MonthlyGroup{Id: key, Total: total})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Id.Year != groups[j].Id.Year {
			return groups[i].Id.Year > groups[j].Id.Year
		}
		return groups[i].Id.Month > groups[j].Id.Month
	})

	if len(groups) > monthlyReportLimit {
		groups = groups[:monthlyReportLimit]
	}

	return helpers.CreateResponse(groups, http.StatusOK)
}
