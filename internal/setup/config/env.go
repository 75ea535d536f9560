package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads variables from the given env file. A missing file is
// not an error: deployments set real environment variables instead.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Fatalf("error loading env file %s: %v", path, err)
	}
}
