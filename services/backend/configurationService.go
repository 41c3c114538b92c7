package backend

import (
	"context"

	"github.com/sendgrid/rest"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/services"
)

const authenticationProviderPath = "/configurations/authentication-provider"

type configurationService struct {
	client *APIClient
}

// NewConfigurationService creates a ConfigurationService backed by the backend REST API
func NewConfigurationService(client *APIClient) services.ConfigurationService {
	return &configurationService{
		client: client,
	}
}

// GET /v1/configurations/authentication-provider
func (s *configurationService) GetAuthenticationProvider(ctx context.Context) (*entities.ApplicationProperties, error) {
	var properties entities.ApplicationProperties
	err := s.client.send(ctx, rest.Get, authenticationProviderPath, nil, nil, &properties)
	if err != nil {
		return nil, err
	}

	return &properties, nil
}
