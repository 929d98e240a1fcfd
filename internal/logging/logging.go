package logging

import (
	"go.uber.org/zap"

	"github.com/studymesh/cpaprep/internal/config"
)

// New builds the application logger: JSON in production, console otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg != nil && cfg.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
