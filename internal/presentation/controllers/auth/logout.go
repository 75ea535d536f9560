package auth

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
)

// LogoutController is a no-op: tokens are stateless and there is no
// server-side revocation list, so logout is a client-side discard.
type LogoutController struct{}

func NewLogoutController() *LogoutController {
	return &LogoutController{}
}

type LogoutResponse struct {
	Message string `json:"message"`
}

func (c *LogoutController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(&LogoutResponse{
		Message: "logged out successfully",
	}, http.StatusOK)
}
