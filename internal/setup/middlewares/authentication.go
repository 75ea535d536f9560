package middlewares

import (
	"net/http"
	"strings"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/utils"
)

// VerifyAccessToken authenticates every protected route: it extracts the
// bearer token from the Authorization header, verifies signature and
// expiry, and resolves the subject to a live user. The resolved id is
// passed downstream in the UserId header; a client-supplied value is
// always overwritten.
func VerifyAccessToken(next http.Handler, findUserById usecase.FindUserByIdRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			http.Error(w, `{"error":"missing or invalid access token"}`, http.StatusUnauthorized)
			return
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")

		userId, err := utils.NewAccessTokenUtil().DecodeToken(authorization)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired access token"}`, http.StatusUnauthorized)
			return
		}

		user, err := findUserById.Find(userId)
		if err != nil {
			http.Error(w, `{"error":"error resolving user"}`, http.StatusInternalServerError)
			return
		}
		if user == nil {
			http.Error(w, `{"error":"invalid or expired access token"}`, http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", user.Id.Hex())

		next.ServeHTTP(w, r)
	})
}
