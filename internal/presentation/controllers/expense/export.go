package expense

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	exportSheetName = "Expenses"
	exportStageTTL  = 10 * time.Minute
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportExpensesController renders the filtered expense list as an XLSX
// workbook. When Redis is configured the serialized workbook is staged
// under a user+filter key so identical repeat requests within the TTL
// skip the rebuild.
type ExportExpensesController struct {
	FindExpensesRepository           usecase.FindExpensesRepository
	FindCategoriesByUserIdRepository usecase.FindCategoriesByUserIdRepository
	Validate                         *validator.Validate
}

func NewExportExpensesController(
	findExpenses usecase.FindExpensesRepository,
	findCategoriesByUserId usecase.FindCategoriesByUserIdRepository,
) *ExportExpensesController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &ExportExpensesController{
		FindExpensesRepository:           findExpenses,
		FindCategoriesByUserIdRepository: findCategoriesByUserId,
		Validate:                         validate,
	}
}

func (c *ExportExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdByHeader(r.Header)
	if errResponse != nil {
		return errResponse
	}

	filters, errResponse := helpers.GetExpenseFilterByQueries(&r.UrlParams, userId, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	redisURL := os.Getenv("REDIS_URL")
	stageKey := exportStageKey(userId, &r.UrlParams)

	if redisURL != "" {
		staged, err := redis_repository.FindExcelBytesByKey(redisURL, stageKey)
		if err != nil {
			log.Printf("export staging lookup failed: %v", err)
		}
		if staged != nil {
			return workbookResponse(staged)
		}
	}

	expenses, err := c.FindExpensesRepository.Find(filters)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	categories, err := c.FindCategoriesByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	workbook, err := buildExpenseWorkbook(expenses, categories)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	if redisURL != "" {
		if err := redis_repository.SaveExcelToRedis(redisURL, stageKey, workbook, exportStageTTL); err != nil {
			log.Printf("export staging failed: %v", err)
		}
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusInternalServerError)
	}

	return workbookResponse(buf.Bytes())
}

func exportStageKey(userId primitive.ObjectID, urlQueries *url.Values) string {
	return fmt.Sprintf("expense_export:%s:%s:%s:%s",
		userId.Hex(),
		urlQueries.Get("from"),
		urlQueries.Get("to"),
		urlQueries.Get("category"),
	)
}

func buildExpenseWorkbook(expenses []models.Expense, categories []models.Category) (*excelize.File, error) {
	categoryNames := make(map[primitive.ObjectID]string, len(categories))
	for _, category := range categories {
		categoryNames[category.Id] = category.Name
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheetName)

	if err := f.SetSheetRow(exportSheetName, "A1", &[]interface{}{"Date", "Description", "Category", "Amount"}); err != nil {
		return nil, err
	}

	for i, expense := range expenses {
		categoryName := "Uncategorized"
		if expense.CategoryId != nil {
			if name, ok := categoryNames[*expense.CategoryId]; ok {
				categoryName = name
			}
		}

		row := []interface{}{
			expense.Date.Format("2006-01-02"),
			expense.Description,
			categoryName,
			expense.Amount,
		}
		if err := f.SetSheetRow(exportSheetName, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func workbookResponse(data []byte) *presentationProtocols.HttpResponse {
	headers := http.Header{}
	headers.Set("Content-Type", xlsxContentType)
	headers.Set("Content-Disposition", `attachment; filename="expenses.xlsx"`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: http.StatusOK,
		Headers:    headers,
	}
}
