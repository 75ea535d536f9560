package setup

import (
	"log"
	"net/http"
	"os"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/config"
	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/setup/middlewares"
)

func Server() http.Handler {
	mux := http.NewServeMux()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set")
	}

	databaseName := os.Getenv("MONGO_DB_NAME")
	if databaseName == "" {
		databaseName = "expense_tracker"
	}

	db := helpers.MongoHelper(mongoURI, databaseName)

	config.SetupRoutes(mux, db)

	return middlewares.RecoveryMiddleware(mux)
}
