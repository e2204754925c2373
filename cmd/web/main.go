package main

import (
	"workhub_backend/internal/app"
	"workhub_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server stopped", "error", err.Error())
	}
}
