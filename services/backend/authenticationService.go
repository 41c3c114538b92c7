package backend

import (
	"context"

	"github.com/sendgrid/rest"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/services"
)

const (
	signUpPath = "/auth/signup"
	signInPath = "/auth/signin"
)

type authenticationService struct {
	client *APIClient
}

// NewAuthenticationService creates an AuthenticationService backed by the backend REST API
func NewAuthenticationService(client *APIClient) services.AuthenticationService {
	return &authenticationService{
		client: client,
	}
}

// POST /v1/auth/signup
func (s *authenticationService) Register(ctx context.Context, user entities.UserRequest) (*entities.User, error) {
	var registered entities.User
	err := s.client.send(ctx, rest.Post, signUpPath, nil, user, &registered)
	if err != nil {
		return nil, err
	}

	return &registered, nil
}

// POST /v1/auth/signin
func (s *authenticationService) Authenticate(ctx context.Context, credentials entities.Credentials) (*entities.AuthenticationResponse, error) {
	var res entities.AuthenticationResponse
	err := s.client.send(ctx, rest.Post, signInPath, nil, credentials, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}
