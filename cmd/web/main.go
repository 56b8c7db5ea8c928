package main

import (
	"log"

	"github.com/joho/godotenv"

	"jobhub_admin/internal/app"
)

func main() {
	// .env опционален: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app.Run()
}
