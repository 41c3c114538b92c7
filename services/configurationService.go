package services

import (
	"context"

	"github.com/unicsmcr/hs_dashboard/entities"
)

// ConfigurationService is the gateway to the configuration endpoints of the backend
type ConfigurationService interface {
	GetAuthenticationProvider(ctx context.Context) (*entities.ApplicationProperties, error)
}
