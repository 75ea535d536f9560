package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCreateUserRepository struct {
	created *models.User
}

func (f *fakeCreateUserRepository) Create(user *models.User) (*models.User, error) {
	saved := *user
	saved.Id = primitive.NewObjectID()
	f.created = &saved
	return &saved, nil
}

type fakeFindUserByEmailRepository struct {
	user *models.User
}

func (f *fakeFindUserByEmailRepository) Find(email string) (*models.User, error) {
	return f.user, nil
}

type fakeCreateCategoriesRepository struct {
	categories []models.Category
}

func (f *fakeCreateCategoriesRepository) CreateMany(categories []models.Category) error {
	f.categories = categories
	return nil
}

func makeJSONRequest(method string, target string, body string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(strings.NewReader(body)),
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

func TestRegisterCreatesUserAndSeedsDefaults(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	createUser := &fakeCreateUserRepository{}
	findByEmail := &fakeFindUserByEmailRepository{}
	createCategories := &fakeCreateCategoriesRepository{}
	controller := NewRegisterController(createUser, findByEmail, createCategories)

	response := controller.Handle(makeJSONRequest(http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"hunter2"}`))

	require.Equal(t, http.StatusCreated, response.StatusCode)

	body := decodeBody[AuthResponse](t, response)
	assert.Equal(t, "alice@example.com", body.Email)
	assert.Equal(t, createUser.created.Id, body.Id)
	assert.NotEmpty(t, body.Token)

	require.NotNil(t, createUser.created)
	assert.NotEqual(t, "hunter2", createUser.created.Password, "password must not be stored in plaintext")

	require.Len(t, createCategories.categories, 5)
	names := make([]string, len(createCategories.categories))
	for i, category := range createCategories.categories {
		names[i] = category.Name
		assert.Equal(t, 0.0, category.Budget)
		assert.Equal(t, createUser.created.Id, category.UserId)
	}
	assert.Equal(t, []string{"Food", "Transport", "Utilities", "Entertainment", "Health"}, names)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	findByEmail := &fakeFindUserByEmailRepository{user: &models.User{
		Id:    primitive.NewObjectID(),
		Email: "alice@example.com",
	}}
	createUser := &fakeCreateUserRepository{}
	createCategories := &fakeCreateCategoriesRepository{}
	controller := NewRegisterController(createUser, findByEmail, createCategories)

	response := controller.Handle(makeJSONRequest(http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"whatever"}`))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Nil(t, createUser.created)
	assert.Empty(t, createCategories.categories)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"email":"alice@example.com"}`},
		{"missing email", `{"password":"hunter2"}`},
		{"empty body", `{}`},
		{"malformed email", `{"email":"not-an-email","password":"hunter2"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewRegisterController(
				&fakeCreateUserRepository{},
				&fakeFindUserByEmailRepository{},
				&fakeCreateCategoriesRepository{},
			)

			response := controller.Handle(makeJSONRequest(http.MethodPost, "/auth/register", tt.body))
			assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		})
	}
}
