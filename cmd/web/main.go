package main

import (
	"classifieds_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; container deployments set real environment variables
	_ = godotenv.Load()

	app.Run()
}
