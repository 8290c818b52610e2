package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

// @title API de Gestión de Inventario
// @version 1.0
// @description REST API for products, contacts, alert thresholds and stock alerts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
