package services

import (
	"context"

	"github.com/unicsmcr/hs_dashboard/entities"
)

// AuthenticationService is the gateway to the authentication endpoints of the backend
type AuthenticationService interface {
	Register(ctx context.Context, user entities.UserRequest) (*entities.User, error)
	Authenticate(ctx context.Context, credentials entities.Credentials) (*entities.AuthenticationResponse, error)
}
