package routes

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/adapters"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

func AuthRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /auth/register", adapters.AdaptRoute(factory.MakeRegisterController(db)))

	server.Handle("POST /auth/login", adapters.AdaptRoute(factory.MakeLoginController(db)))

	server.Handle("POST /auth/logout", adapters.AdaptRoute(factory.MakeLogoutController()))
}
