package helpers

import (
	"net/http"

	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserIdByHeader reads the authenticated user id placed on the request
// by the authentication middleware.
func GetUserIdByHeader(header http.Header) (primitive.ObjectID, *presentationProtocols.HttpResponse) {
	userId, err := primitive.ObjectIDFromHex(header.Get("UserId"))
	if err != nil {
		return primitive.NilObjectID, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not authenticated",
		}, http.StatusUnauthorized)
	}

	return userId, nil
}
