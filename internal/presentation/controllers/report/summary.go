package report

import (
	"net/http"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetSummaryController aggregates the current calendar month: total spend
// plus a per-category breakdown, joined against the category store in
// memory.
type GetSummaryController struct {
	FindExpensesRepository           usecase.FindExpensesRepository
	FindCategoriesByUserIdRepository usecase.FindCategoriesByUserIdRepository

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewGetSummaryController(
	findExpenses usecase.FindExpensesRepository,
	findCategoriesByUserId usecase.FindCategoriesByUserIdRepository,
) *GetSummaryController {
	return &GetSummaryController{
		FindExpensesRepository:           findExpenses,
		FindCategoriesByUserIdRepository: findCategoriesByUserId,
		Now:                              time.Now,
	}
}

type CategoryBreakdownEntry struct {
	Category any     `json:"category"`
	Total    float64 `json:"total"`
}

type SummaryResponse struct {
	TotalExpenses     float64                  `json:"totalExpenses"`
	CategoryBreakdown []CategoryBreakdownEntry `json:"categoryBreakdown"`
}

// uncategorizedPlaceholder stands in for an absent or dangling category
// reference.
type uncategorizedPlaceholder struct {
	Name string `json:"name"`
}

func (c *GetSummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdByHeader(r.Header)
	if errResponse != nil {
		return errResponse
	}

	now := c.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	expenses, err := c.FindExpensesRepository.Find(&usecase.ExpenseFilterParams{
		UserId: userId,
		From:   &startOfMonth,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	total := 0.0
	subtotals := make(map[primitive.ObjectID]float64)
	uncategorized := 0.0
	hasUncategorized := false

	for _, expense := range expenses {
		total += expense.Amount
		if expense.CategoryId == nil {
			uncategorized += expense.Amount
			hasUncategorized = true
			continue
		}
		subtotals[*expense.CategoryId] += expense.Amount
	}

	categories, err := c.FindCategoriesByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	categoryMap := make(map[primitive.ObjectID]*models.Category, len(categories))
	for i := range categories {
		categoryMap[categories[i].Id] = &categories[i]
	}

	breakdown := make([]CategoryBreakdownEntry, 0, len(subtotals)+1)
	for categoryId, subtotal := range subtotals {
		entry := CategoryBreakdownEntry{Total: subtotal}
		if category, ok := categoryMap[categoryId]; ok {
			entry.Category = category
		} else {
			// The referenced category was deleted; keep the subtotal
			// under the placeholder.
			entry.Category = uncategorizedPlaceholder{Name: "Uncategorized"}
		}
		breakdown = append(breakdown, entry)
	}

	if hasUncategorized {
		breakdown = append(breakdown, CategoryBreakdownEntry{
			Category: uncategorizedPlaceholder{Name: "Uncategorized"},
			Total:    uncategorized,
		})
	}

	return helpers.CreateResponse(&SummaryResponse{
		TotalExpenses:     total,
		CategoryBreakdown: breakdown,
	}, http.StatusOK)
}
