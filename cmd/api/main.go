package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/emre/acadrecords/internal/pkg/logger"
	"github.com/emre/acadrecords/internal/server"
)

// @title Academic Records API
// @version 1.0
// @description REST API for managing students, courses and enrollments

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Environment variables override config file values; a .env file is optional
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment and config file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
