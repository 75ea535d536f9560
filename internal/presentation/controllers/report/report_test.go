package report

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFindExpensesRepository struct {
	expenses    []models.Expense
	lastFilters *usecase.ExpenseFilterParams
}

func (f *fakeFindExpensesRepository) Find(filters *usecase.ExpenseFilterParams) ([]models.Expense, error) {
	f.lastFilters = filters

	result := []models.Expense{}
	for _, expense := range f.expenses {
		if expense.UserId != filters.UserId {
			continue
		}
		if filters.From != nil && expense.Date.Before(*filters.From) {
			continue
		}
		result = append(result, expense)
	}
	return result, nil
}

type fakeFindCategoriesByUserIdRepository struct {
	categories []models.Category
}

func (f *fakeFindCategoriesByUserIdRepository) Find(userId primitive.ObjectID) ([]models.Category, error) {
	return f.categories, nil
}

func makeAuthedRequest(userId primitive.ObjectID) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(strings.NewReader("")),
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decodeBody[T any](t *testing.T, response *presentationProtocols.HttpResponse) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(response.Body).Decode(&out))
	return out
}

// decodedBreakdownEntry mirrors the wire shape of a breakdown entry; the
// category is decoded generically since it may be a full category document
// or just the placeholder name.
type decodedBreakdownEntry struct {
	Category map[string]any `json:"category"`
	Total    float64        `json:"total"`
}

type decodedSummary struct {
	TotalExpenses     float64                 `json:"totalExpenses"`
	CategoryBreakdown []decodedBreakdownEntry `json:"categoryBreakdown"`
}

func TestSummaryCurrentMonthOnly(t *testing.T) {
	owner := primitive.NewObjectID()
	food := models.Category{Id: primitive.NewObjectID(), UserId: owner, Name: "Food"}

	find := &fakeFindExpensesRepository{expenses: []models.Expense{
		{Id: primitive.NewObjectID(), UserId: owner, Amount: 30, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), CategoryId: &food.Id},
		{Id: primitive.NewObjectID(), UserId: owner, Amount: 12.5, Date: time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC), CategoryId: &food.Id},
		{Id: primitive.NewObjectID(), UserId: owner, Amount: 99, Date: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), CategoryId: &food.Id},
	}}
	controller := NewGetSummaryController(find, &fakeFindCategoriesByUserIdRepository{
		categories: []models.Category{food},
	})
	controller.Now = func() time.Time {
		return time.Date(2024, 3, 25, 10, 30, 0, 0, time.UTC)
	}

	response := controller.Handle(makeAuthedRequest(owner))

	require.Equal(t, http.StatusOK, response.StatusCode)
	summary := decodeBody[decodedSummary](t, response)

	assert.Equal(t, 42.5, summary.TotalExpenses)
	require.Len(t, summary.CategoryBreakdown, 1)
	assert.Equal(t, "Food", summary.CategoryBreakdown[0].Category["name"])
	assert.Equal(t, 42.5, summary.CategoryBreakdown[0].Total)

	require.NotNil(t, find.lastFilters)
	require.NotNil(t, find.lastFilters.From)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *find.lastFilters.From)
}

func TestSummaryUncategorizedBuckets(t *testing.T) {
	owner := primitive.NewObjectID()
	dangling := primitive.NewObjectID()
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	find := &fakeFindExpensesRepository{expenses: []models.Expense{
		{Id: primitive.NewObjectID(), UserId: owner, Amount: 5, Date: now},
		{Id: primitive.NewObjectID(), UserId: owner, Amount: 7, Date: now, CategoryId: &dangling},
	}}
	controller := NewGetSummaryController(find, &fakeFindCategoriesByUserIdRepository{})
	controller.Now = func() time.Time { return now }

	response := controller.Handle(makeAuthedRequest(owner))

	require.Equal(t, http.StatusOK, response.StatusCode)
	summary := decodeBody[decodedSummary](t, response)

	assert.Equal(t, 12.0, summary.TotalExpenses)
	// Dangling reference and no reference land in separate placeholder
	// entries, both named Uncategorized.
	require.Len(t, summary.CategoryBreakdown, 2)
	totals := map[float64]bool{}
	for _, entry := range summary.CategoryBreakdown {
		assert.Equal(t, "Uncategorized", entry.Category["name"])
		totals[entry.Total] = true
	}
	assert.True(t, totals[5.0])
	assert.True(t, totals[7.0])
}

func TestSummaryEmptyMonth(t *testing.T) {
	controller := NewGetSummaryController(&fakeFindExpensesRepository{}, &fakeFindCategoriesByUserIdRepository{})

	response := controller.Handle(makeAuthedRequest(primitive.NewObjectID()))

	require.Equal(t, http.StatusOK, response.StatusCode)
	summary := decodeBody[decodedSummary](t, response)
	assert.Equal(t, 0.0, summary.TotalExpenses)
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestMonthlyReportGroupsAndSorts(t *testing.T) {
	owner := primitive.NewObjectID()
	find := &fakeFindExpensesRepository{expenses: []models.Expense{
		{Id: primitive.NewObjectID(), UserId: owner, Amount: 10, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{Id: primitive.NewObjectID(), UserId: owner, Amount: 15, Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		{Id: primitive.NewObjectID(), UserId: owner, Amount: 20, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Id: primitive.NewObjectID(), UserId: owner, Amount: 30, Date: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
	}}
	controller := NewGetMonthlyReportController(find)

	response := controller.Handle(makeAuthedRequest(owner))

	require.Equal(t, http.StatusOK, response.StatusCode)
	groups := decodeBody[[]MonthlyGroup](t, response)

	require.Len(t, groups, 3)
	assert.Equal(t, MonthlyGroup{Id: MonthlyGroupKey{Month: 2, Year: 2024}, Total: 20}, groups[0])
	assert.Equal(t, MonthlyGroup{Id: MonthlyGroupKey{Month: 1, Year: 2024}, Total: 25}, groups[1])
	assert.Equal(t, MonthlyGroup{Id: MonthlyGroupKey{Month: 12, Year: 2023}, Total: 30}, groups[2])
}

func TestMonthlyReportCapsAtTwelveMonths(t *testing.T) {
	owner := primitive.NewObjectID()
	expenses := []models.Expense{}
	for i := 0; i < 15; i++ {
		expenses = append(expenses, models.Expense{
			Id:     primitive.NewObjectID(),
			UserId: owner,
			Amount: 1,
			Date:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0),
		})
	}
	controller := NewGetMonthlyReportController(&fakeFindExpensesRepository{expenses: expenses})

	response := controller.Handle(makeAuthedRequest(owner))

	require.Equal(t, http.StatusOK, response.StatusCode)
	groups := decodeBody[[]MonthlyGroup](t, response)

	require.Len(t, groups, 12)
	// Most recent month first, oldest months dropped.
	assert.Equal(t, MonthlyGroupKey{Month: 3, Year: 2024}, groups[0].Id)
	assert.Equal(t, MonthlyGroupKey{Month: 4, Year: 2023}, groups[11].Id)
}

func TestReportRequiresUserHeader(t *testing.T) {
	controller := NewGetMonthlyReportController(&fakeFindExpensesRepository{})

	req := httptest.NewRequest(http.MethodGet, "/reports/monthly", nil)
	response := controller.Handle(presentationProtocols.HttpRequest{
		Body:      io.NopCloser(strings.NewReader("")),
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	})

	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}
