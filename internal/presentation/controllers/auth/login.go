package auth

import (
	"encoding/json"
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/utils"
	"github.com/go-playground/validator/v10"
)

// invalidCredentialsMessage is shared by the unknown-email and
// wrong-password paths so responses never reveal whether an account
// exists.
const invalidCredentialsMessage = "invalid credentials"

type LoginController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	AccessToken               *utils.AccessTokenUtil
	Validate                  *validator.Validate
}

func NewLoginController(findUserByEmail usecase.FindUserByEmailRepository) *LoginController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &LoginController{
		FindUserByEmailRepository: findUserByEmail,
		AccessToken:               utils.NewAccessTokenUtil(),
		Validate:                  validate,
	}
}

type LoginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusBadRequest)
	}

	user, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding user",
		}, http.StatusInternalServerError)
	}

	if user == nil || !utils.ComparePassword(user.Password, body.Password) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: invalidCredentialsMessage,
		}, http.StatusBadRequest)
	}

	token, err := c.AccessToken.CreateToken(user.Id)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating access token",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&AuthResponse{
		Id:    user.Id,
		Email: user.Email,
		Token: token,
	}, http.StatusOK)
}
