package utils

import (
	"os"

	"github.com/unicsmcr/hs_dashboard/environment"
	"go.uber.org/zap"
)

const loggerName = "hs_dashboard"

// NewLogger creates the application logger, a production one when ENVIRONMENT is prod
func NewLogger() (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv(environment.Environment) == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return logger.Named(loggerName), nil
}
