package services

import (
	"context"

	"github.com/unicsmcr/hs_dashboard/entities"
)

// RotationService is the gateway to the rotation endpoints of the backend.
// Every call issues exactly one request and never retries.
type RotationService interface {
	GetAll(ctx context.Context, filter *entities.HTTPFilter) (*entities.RotationPage, error)
	GetByToken(ctx context.Context, token string) (*entities.Rotation, error)
	GetAllForCurrentUser(ctx context.Context) ([]entities.Rotation, error)

	Create(ctx context.Context, rotation entities.RotationRequest) (*entities.Rotation, error)
	Update(ctx context.Context, token string, rotation entities.RotationRequest) error
	Delete(ctx context.Context, token string) error

	GetRotationProjects(ctx context.Context, token string) ([]entities.RotationProject, error)
	AddProjects(ctx context.Context, token string, rotationProjects []entities.RotationProjectRequest) error

	GetWebsocketClients(ctx context.Context, token string) ([]entities.WebsocketClient, error)

	GetUsers(ctx context.Context, token string) ([]entities.User, error)
	AddUser(ctx context.Context, token, username string) error
	DeleteUser(ctx context.Context, token string, userID int64) error
}
