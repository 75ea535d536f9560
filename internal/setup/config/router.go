package config

import (
	"net/http"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database) {
	apiServer := http.NewServeMux()
	routes.AuthRoutes(apiServer, db)
	routes.CategoryRoutes(apiServer, db)
	routes.ExpenseRoutes(apiServer, db)
	routes.ReportRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
