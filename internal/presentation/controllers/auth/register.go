package auth

import (
	"encoding/json"
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/models"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/domain/usecase"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/helpers"
	presentationProtocols "github.com/antman-ilmtec/expenses-tracker-talenlio/internal/presentation/protocols"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/utils"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegisterController struct {
	CreateUserRepository       usecase.CreateUserRepository
	FindUserByEmailRepository  usecase.FindUserByEmailRepository
	CreateCategoriesRepository usecase.CreateCategoriesRepository
	AccessToken                *utils.AccessTokenUtil
	Validate                   *validator.Validate
}

func NewRegisterController(
	createUser usecase.CreateUserRepository,
	findUserByEmail usecase.FindUserByEmailRepository,
	createCategories usecase.CreateCategoriesRepository,
) *RegisterController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &RegisterController{
		CreateUserRepository:       createUser,
		FindUserByEmailRepository:  findUserByEmail,
		CreateCategoriesRepository: createCategories,
		AccessToken:                utils.NewAccessTokenUtil(),
		Validate:                   validate,
	}
}

type RegisterBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Id    primitive.ObjectID `json:"id"`
	Email string             `json:"email"`
	Token string             `json:"token"`
}

func (c *RegisterController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RegisterBody
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

	existingUser, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error checking user email",
		}, http.StatusInternalServerError)
	}

	if existingUser != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user already exists",
		}, http.StatusBadRequest)
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error hashing password",
		}, http.StatusInternalServerError)
	}

	user, err := c.CreateUserRepository.Create(&models.User{
		Email:    body.Email,
		Password: hash,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating user",
		}, http.StatusInternalServerError)
	}

	// Seed the default budget buckets. Independent inserts with no
	// rollback: a failure here leaves the user with partial defaults.
	defaults := make([]models.Category, len(models.DefaultCategoryNames))
	for i, name := range models.DefaultCategoryNames {
		defaults[i] = models.Category{
			UserId: user.Id,
			Name:   name,
			Budget: 0,
		}
	}
	if err := c.CreateCategoriesRepository.CreateMany(defaults); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating default categories",
		}, http.StatusInternalServerError)
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
	}, http.StatusCreated)
}
