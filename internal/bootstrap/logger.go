package bootstrap

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger picks the zap preset for the current environment: the JSON
// production config when APP_ENV=production, the console development one
// otherwise.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
