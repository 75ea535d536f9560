package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFindUserByIdRepository struct {
	user *models.User
}

func (f *fakeFindUserByIdRepository) Find(userId primitive.ObjectID) (*models.User, error) {
	if f.user == nil || f.user.Id != userId {
		return nil, nil
	}
	return f.user, nil
}

func recordUserIdHandler(seen *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = r.Header.Get("UserId")
		w.WriteHeader(http.StatusOK)
	})
}

func TestVerifyAccessTokenSetsUserIdHeader(t *testing.T) {
	t.Setenv("SECRET_JWT", "middleware-test-secret")

	user := &models.User{Id: primitive.NewObjectID(), Email: "ada@example.com"}
	token, err := utils.NewAccessTokenUtil().CreateToken(user.Id)
	require.NoError(t, err)

	var seen string
	handler := VerifyAccessToken(recordUserIdHandler(&seen), &fakeFindUserByIdRepository{user: user})

	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	// A client-supplied UserId must never survive.
	req.Header.Set("UserId", primitive.NewObjectID().Hex())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.Id.Hex(), seen)
}

func TestVerifyAccessTokenMissingHeader(t *testing.T) {
	var seen string
	handler := VerifyAccessToken(recordUserIdHandler(&seen), &fakeFindUserByIdRepository{})

	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, seen)
}

func TestVerifyAccessTokenMalformedToken(t *testing.T) {
	t.Setenv("SECRET_JWT", "middleware-test-secret")

	var seen string
	handler := VerifyAccessToken(recordUserIdHandler(&seen), &fakeFindUserByIdRepository{})

	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, seen)
}

func TestVerifyAccessTokenDeletedUser(t *testing.T) {
	t.Setenv("SECRET_JWT", "middleware-test-secret")

	token, err := utils.NewAccessTokenUtil().CreateToken(primitive.NewObjectID())
	require.NoError(t, err)

	var seen string
	handler := VerifyAccessToken(recordUserIdHandler(&seen), &fakeFindUserByIdRepository{})

	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, seen)
}
