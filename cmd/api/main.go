package main

import (
	_ "time/tzdata"

	_ "voice_billing/docs"
	"voice_billing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Voice Billing API
// @version         1.0
// @description     Monthly invoicing, payment collection and overdue tracking for voice agent usage.

// @BasePath  /v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Operator API key. Also accepted as "Bearer <key>" in Authorization.

func main() {
	routes.Run()
}
