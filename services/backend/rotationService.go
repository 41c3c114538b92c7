package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sendgrid/rest"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/services"
)

const rotationsPath = "/rotations"

type rotationService struct {
	client *APIClient
}

// NewRotationService creates a RotationService backed by the backend REST API
func NewRotationService(client *APIClient) services.RotationService {
	return &rotationService{
		client: client,
	}
}

func rotationPath(token string, subPaths ...string) string {
	path := fmt.Sprintf("%s/%s", rotationsPath, url.PathEscape(token))
	for _, subPath := range subPaths {
		path = fmt.Sprintf("%s/%s", path, subPath)
	}
	return path
}

// GET /v1/rotations
func (s *rotationService) GetAll(ctx context.Context, filter *entities.HTTPFilter) (*entities.RotationPage, error) {
	var page entities.RotationPage
	err := s.client.send(ctx, rest.Get, rotationsPath, filter.Values(), nil, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// GET /v1/rotations/{token}
func (s *rotationService) GetByToken(ctx context.Context, token string) (*entities.Rotation, error) {
	if token == "" {
		return nil, services.ErrInvalidToken
	}

	var rotation entities.Rotation
	err := s.client.send(ctx, rest.Get, rotationPath(token), nil, nil, &rotation)
	if err != nil {
		return nil, err
	}

	return &rotation, nil
}

// GET /v1/rotations/currentUser
func (s *rotationService) GetAllForCurrentUser(ctx context.Context) ([]entities.Rotation, error) {
	rotations := []entities.Rotation{}
	err := s.client.send(ctx, rest.Get, rotationsPath+"/currentUser", nil, nil, &rotations)
	if err != nil {
		return nil, err
	}

	return rotations, nil
}

// POST /v1/rotations
func (s *rotationService) Create(ctx context.Context, rotation entities.RotationRequest) (*entities.Rotation, error) {
	var created entities.Rotation
	err := s.client.send(ctx, rest.Post, rotationsPath, nil, rotation, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// PUT /v1/rotations/{token}
func (s *rotationService) Update(ctx context.Context, token string, rotation entities.RotationRequest) error {
	if token == "" {
		return services.ErrInvalidToken
	}

	return s.client.send(ctx, rest.Put, rotationPath(token), nil, rotation, nil)
}

// DELETE /v1/rotations/{token}
func (s *rotationService) Delete(ctx context.Context, token string) error {
	if token == "" {
		return services.ErrInvalidToken
	}

	return s.client.send(ctx, rest.Delete, rotationPath(token), nil, nil, nil)
}

// GET /v1/rotations/{token}/rotationProjects
func (s *rotationService) GetRotationProjects(ctx context.Context, token string) ([]entities.RotationProject, error) {
	if token == "" {
		return nil, services.ErrInvalidToken
	}

	rotationProjects := []entities.RotationProject{}
	err := s.client.send(ctx, rest.Get, rotationPath(token, "rotationProjects"), nil, nil, &rotationProjects)
	if err != nil {
		return nil, err
	}

	return rotationProjects, nil
}

// POST /v1/rotations/{token}/projects
func (s *rotationService) AddProjects(ctx context.Context, token string, rotationProjects []entities.RotationProjectRequest) error {
	if token == "" {
		return services.ErrInvalidToken
	}

	return s.client.send(ctx, rest.Post, rotationPath(token, "projects"), nil, rotationProjects, nil)
}

// GET /v1/rotations/{token}/websocket/clients
func (s *rotationService) GetWebsocketClients(ctx context.Context, token string) ([]entities.WebsocketClient, error) {
	if token == "" {
		return nil, services.ErrInvalidToken
	}

	clients := []entities.WebsocketClient{}
	err := s.client.send(ctx, rest.Get, rotationPath(token, "websocket", "clients"), nil, nil, &clients)
	if err != nil {
		return nil, err
	}

	return clients, nil
}

// GET /v1/rotations/{token}/users
func (s *rotationService) GetUsers(ctx context.Context, token string) ([]entities.User, error) {
	if token == "" {
		return nil, services.ErrInvalidToken
	}

	users := []entities.User{}
	err := s.client.send(ctx, rest.Get, rotationPath(token, "users"), nil, nil, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

type addUserReq struct {
	Username string `json:"username"`
}

// POST /v1/rotations/{token}/users
func (s *rotationService) AddUser(ctx context.Context, token, username string) error {
	if token == "" {
		return services.ErrInvalidToken
	}

	return s.client.send(ctx, rest.Post, rotationPath(token, "users"), nil, addUserReq{Username: username}, nil)
}

// DELETE /v1/rotations/{token}/users/{userId}
func (s *rotationService) DeleteUser(ctx context.Context, token string, userID int64) error {
	if token == "" {
		return services.ErrInvalidToken
	}

	return s.client.send(ctx, rest.Delete, rotationPath(token, "users", fmt.Sprint(userID)), nil, nil, nil)
}
