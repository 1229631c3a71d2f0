package main

import (
	"os"

	"github.com/Destoh2020/iesrform/internal/pkg/logger"
	"github.com/Destoh2020/iesrform/internal/server"
)

// @title IESR Staff Application Form API
// @version 1.0
// @description API for managing staff training course applications

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey AdminAuth
// @in header
// @name X-Admin-Password
// @description Shared admin secret for administrative endpoints

func main() {
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
