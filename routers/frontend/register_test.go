package frontend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/services"
)

var testRegisterForm = url.Values{
	"username":        {"johndoe"},
	"firstname":       {"John"},
	"lastname":        {"Doe"},
	"email":           {"john@doe.com"},
	"password":        {"password123"},
	"confirmPassword": {"password123"},
}

var testUserRequest = entities.UserRequest{
	Username:        "johndoe",
	Firstname:       "John",
	Lastname:        "Doe",
	Email:           "john@doe.com",
	Password:        "password123",
	ConfirmPassword: "password123",
}

func copyForm(form url.Values) url.Values {
	copied := url.Values{}
	for key, values := range form {
		copied[key] = append([]string(nil), values...)
	}
	return copied
}

func (s *testSetup) expectDatabaseProvider() {
	s.mockConfigService.EXPECT().GetAuthenticationProvider(gomock.Any()).
		Return(&entities.ApplicationProperties{Key: "authentication.provider", Value: "DATABASE"}, nil).AnyTimes()
}

func Test_RegisterPage(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		prep         func(*testSetup)
		wantCode     int
		wantLocation string
	}{
		{
			name:         "should redirect logged in user to home",
			token:        testToken(),
			wantCode:     http.StatusSeeOther,
			wantLocation: "/home",
		},
		{
			name: "should redirect to login when users are managed by LDAP",
			prep: func(setup *testSetup) {
				setup.mockConfigService.EXPECT().GetAuthenticationProvider(gomock.Any()).
					Return(&entities.ApplicationProperties{Key: "authentication.provider", Value: "LDAP"}, nil).Times(1)
			},
			wantCode:     http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name: "should render form",
			prep: func(setup *testSetup) {
				setup.expectDatabaseProvider()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "should render form when provider lookup fails",
			prep: func(setup *testSetup) {
				setup.mockConfigService.EXPECT().GetAuthenticationProvider(gomock.Any()).
					Return(nil, errors.New("service down")).Times(1)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			defer setup.ctrl.Finish()
			if tt.prep != nil {
				tt.prep(setup)
			}

			w := setup.do(http.MethodGet, "/register", nil, tt.token)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `name="confirmPassword"`)
			}
		})
	}
}

func Test_Register__should_not_call_backend_when_passwords_do_not_match(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	setup.mockConfigService.EXPECT().GetAuthenticationProvider(gomock.Any()).Times(0)
	setup.mockAuthService.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	form := copyForm(testRegisterForm)
	form.Set("confirmPassword", "different")

	w := setup.do(http.MethodPost, "/register", form, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")
	assert.Contains(t, w.Body.String(), `value="johndoe"`)
	assert.Equal(t, &entities.ToastMessage{Text: "Some fields are not properly filled", Type: entities.ToastDanger}, setup.pendingToast())
}

func Test_Register__should_sign_in_registered_user(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	setup.expectDatabaseProvider()

	gomock.InOrder(
		setup.mockAuthService.EXPECT().Register(gomock.Any(), testUserRequest).
			Return(&entities.User{ID: 1, Username: "johndoe"}, nil).Times(1),
		setup.mockAuthService.EXPECT().Authenticate(gomock.Any(), entities.Credentials{Username: "johndoe", Password: "password123"}).
			Return(&entities.AuthenticationResponse{AccessToken: "jwt"}, nil).Times(1),
	)

	w := setup.do(http.MethodPost, "/register", testRegisterForm, "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	authCookie := cookie(w, authCookieName)
	if assert.NotNil(t, authCookie) {
		assert.Equal(t, "jwt", authCookie.Value)
	}
}

func Test_Register__should_show_backend_message_when_registration_fails(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	setup.expectDatabaseProvider()

	setup.mockAuthService.EXPECT().Register(gomock.Any(), testUserRequest).
		Return(nil, &services.APIError{Status: http.StatusBadRequest, Message: "Username already taken"}).Times(1)
	setup.mockAuthService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Times(0)

	w := setup.do(http.MethodPost, "/register", testRegisterForm, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "disabled")
	assert.Nil(t, cookie(w, authCookieName))
	assert.Equal(t, &entities.ToastMessage{Text: "Username already taken", Type: entities.ToastDanger}, setup.pendingToast())
}

func Test_Register__should_redirect_to_login_when_users_are_managed_by_LDAP(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	setup.mockConfigService.EXPECT().GetAuthenticationProvider(gomock.Any()).
		Return(&entities.ApplicationProperties{Key: "authentication.provider", Value: "LDAP"}, nil).Times(1)
	setup.mockAuthService.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	w := setup.do(http.MethodPost, "/register", testRegisterForm, "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func Test_Register__should_keep_toast_for_rerendered_form_while_previous_page_listens(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	ctx, leavePage := context.WithCancel(context.Background())
	previousPage := setup.hub.Notifier(testToastKey).Listen(ctx)

	form := copyForm(testRegisterForm)
	form.Set("confirmPassword", "different")
	w := setup.do(http.MethodPost, "/register", form, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	select {
	case message := <-previousPage:
		t.Fatalf("toast %v sent to the page being left", message)
	default:
	}
	leavePage()

	assert.Equal(t, &entities.ToastMessage{Text: "Some fields are not properly filled", Type: entities.ToastDanger}, setup.pendingToast())
}

func Test_Register__should_redirect_logged_in_user_without_calling_backend(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	setup.mockConfigService.EXPECT().GetAuthenticationProvider(gomock.Any()).Times(0)
	setup.mockAuthService.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	w := setup.do(http.MethodPost, "/register", testRegisterForm, testToken())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
}
