package backend

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/services"
)

func Test_RotationService__should_call_correct_endpoint(t *testing.T) {
	tests := []struct {
		name       string
		call       func(services.RotationService) error
		response   string
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   string
	}{
		{
			name: "GetAll",
			call: func(s services.RotationService) error {
				_, err := s.GetAll(context.Background(), &entities.HTTPFilter{Search: "tv", Page: 1, Size: 10})
				return err
			},
			response:   `{"content":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/rotations",
			wantQuery:  "page=1&search=tv&size=10",
		},
		{
			name: "GetAll without filter",
			call: func(s services.RotationService) error {
				_, err := s.GetAll(context.Background(), nil)
				return err
			},
			response:   `{"content":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/rotations",
		},
		{
			name: "GetByToken",
			call: func(s services.RotationService) error {
				_, err := s.GetByToken(context.Background(), "rot1")
				return err
			},
			response:   `{"token":"rot1","name":"Hall"}`,
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/rotations/rot1",
		},
		{
			name: "GetAllForCurrentUser",
			call: func(s services.RotationService) error {
				_, err := s.GetAllForCurrentUser(context.Background())
				return err
			},
			response:   `[]`,
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/rotations/currentUser",
		},
		{
			name: "Create",
			call: func(s services.RotationService) error {
				_, err := s.Create(context.Background(), entities.RotationRequest{Name: "Hall", ProgressBar: true})
				return err
			},
			response:   `{"token":"rot1","name":"Hall","progressBar":true}`,
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/rotations",
			wantBody:   `{"name":"Hall","progressBar":true}`,
		},
		{
			name: "Update",
			call: func(s services.RotationService) error {
				return s.Update(context.Background(), "rot1", entities.RotationRequest{Name: "Lobby"})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/v1/rotations/rot1",
			wantBody:   `{"name":"Lobby","progressBar":false}`,
		},
		{
			name: "Delete",
			call: func(s services.RotationService) error {
				return s.Delete(context.Background(), "rot1")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v1/rotations/rot1",
		},
		{
			name: "GetRotationProjects",
			call: func(s services.RotationService) error {
				_, err := s.GetRotationProjects(context.Background(), "rot1")
				return err
			},
			response:   `[]`,
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/rotations/rot1/rotationProjects",
		},
		{
			name: "AddProjects",
			call: func(s services.RotationService) error {
				return s.AddProjects(context.Background(), "rot1", []entities.RotationProjectRequest{
					{ProjectToken: "p1", RotationTime: 30},
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/rotations/rot1/projects",
			wantBody:   `[{"projectToken":"p1","rotationTime":30}]`,
		},
		{
			name: "GetWebsocketClients",
			call: func(s services.RotationService) error {
				_, err := s.GetWebsocketClients(context.Background(), "rot1")
				return err
			},
			response:   `[]`,
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/rotations/rot1/websocket/clients",
		},
		{
			name: "GetUsers",
			call: func(s services.RotationService) error {
				_, err := s.GetUsers(context.Background(), "rot1")
				return err
			},
			response:   `[]`,
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/rotations/rot1/users",
		},
		{
			name: "AddUser",
			call: func(s services.RotationService) error {
				return s.AddUser(context.Background(), "rot1", "bob")
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/rotations/rot1/users",
			wantBody:   `{"username":"bob"}`,
		},
		{
			name: "DeleteUser",
			call: func(s services.RotationService) error {
				return s.DeleteUser(context.Background(), "rot1", 42)
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v1/rotations/rot1/users/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, client := setupBackend(t, http.StatusOK, tt.response)
			defer backend.server.Close()

			err := tt.call(NewRotationService(client))
			assert.NoError(t, err)

			assert.Equal(t, 1, backend.requestCount())
			req := backend.lastRequest(t)
			assert.Equal(t, tt.wantMethod, req.method)
			assert.Equal(t, tt.wantPath, req.path)
			assert.Equal(t, tt.wantQuery, req.query)
			if tt.wantBody == "" {
				assert.Empty(t, req.body)
			} else {
				assert.JSONEq(t, tt.wantBody, req.body)
			}
		})
	}
}

func Test_RotationService__should_return_ErrInvalidToken_without_calling_backend_when_token_is_empty(t *testing.T) {
	backend, client := setupBackend(t, http.StatusOK, "")
	defer backend.server.Close()
	s := NewRotationService(client)
	ctx := context.Background()

	_, err := s.GetByToken(ctx, "")
	assert.Equal(t, services.ErrInvalidToken, err)
	assert.Equal(t, services.ErrInvalidToken, s.Update(ctx, "", entities.RotationRequest{}))
	assert.Equal(t, services.ErrInvalidToken, s.Delete(ctx, ""))
	_, err = s.GetRotationProjects(ctx, "")
	assert.Equal(t, services.ErrInvalidToken, err)
	assert.Equal(t, services.ErrInvalidToken, s.AddProjects(ctx, "", nil))
	_, err = s.GetWebsocketClients(ctx, "")
	assert.Equal(t, services.ErrInvalidToken, err)
	_, err = s.GetUsers(ctx, "")
	assert.Equal(t, services.ErrInvalidToken, err)
	assert.Equal(t, services.ErrInvalidToken, s.AddUser(ctx, "", "bob"))
	assert.Equal(t, services.ErrInvalidToken, s.DeleteUser(ctx, "", 1))

	assert.Equal(t, 0, backend.requestCount())
}

func Test_Update__should_resolve_with_no_content_on_2xx(t *testing.T) {
	backend, client := setupBackend(t, http.StatusNoContent, "")
	defer backend.server.Close()

	err := NewRotationService(client).Update(context.Background(), "rot1", entities.RotationRequest{Name: "Lobby", ProgressBar: true})

	assert.NoError(t, err)
	req := backend.lastRequest(t)
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/api/v1/rotations/rot1", req.path)
	assert.JSONEq(t, `{"name":"Lobby","progressBar":true}`, req.body)
}

func Test_Update__should_surface_backend_error_unchanged(t *testing.T) {
	backend, client := setupBackend(t, http.StatusForbidden, `{"message":"forbidden"}`)
	defer backend.server.Close()

	err := NewRotationService(client).Update(context.Background(), "rot1", entities.RotationRequest{Name: "Lobby"})

	assert.Equal(t, &services.APIError{Status: http.StatusForbidden, Message: "forbidden", Body: `{"message":"forbidden"}`}, err)
	assert.Equal(t, 1, backend.requestCount())
}

func Test_GetByToken__should_decode_rotation(t *testing.T) {
	backend, client := setupBackend(t, http.StatusOK, `{
		"id": 3,
		"token": "rot1",
		"name": "Hall",
		"progressBar": true,
		"rotationProjects": [{"id": 1, "rotationTime": 30, "project": {"token": "p1", "name": "Sales"}}]
	}`)
	defer backend.server.Close()

	rotation, err := NewRotationService(client).GetByToken(context.Background(), "rot1")

	assert.NoError(t, err)
	assert.Equal(t, &entities.Rotation{
		ID:          3,
		Token:       "rot1",
		Name:        "Hall",
		ProgressBar: true,
		RotationProjects: []entities.RotationProject{
			{ID: 1, RotationTime: 30, Project: entities.Project{Token: "p1", Name: "Sales"}},
		},
	}, rotation)
}

func Test_GetAll__should_decode_page(t *testing.T) {
	backend, client := setupBackend(t, http.StatusOK, `{"content":[{"token":"rot1","name":"Hall"}],"totalElements":1,"totalPages":1,"number":0,"size":20}`)
	defer backend.server.Close()

	page, err := NewRotationService(client).GetAll(context.Background(), &entities.HTTPFilter{})

	assert.NoError(t, err)
	assert.Equal(t, &entities.RotationPage{
		Content:       []entities.Rotation{{Token: "rot1", Name: "Hall"}},
		TotalElements: 1,
		TotalPages:    1,
		Number:        0,
		Size:          20,
	}, page)
}

func Test_GetUsers__should_return_error_and_no_users_when_backend_fails(t *testing.T) {
	backend, client := setupBackend(t, http.StatusInternalServerError, "")
	defer backend.server.Close()

	users, err := NewRotationService(client).GetUsers(context.Background(), "rot1")

	assert.Nil(t, users)
	assert.Equal(t, &services.APIError{Status: http.StatusInternalServerError}, err)
}
