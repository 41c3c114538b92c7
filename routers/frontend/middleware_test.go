package frontend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/testutils"
	"github.com/unicsmcr/hs_dashboard/utils/auth"
)

func Test_sessionMiddleware__should_attach_token_to_request_context(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	token := testToken()

	setup.mockRotationService.EXPECT().GetAllForCurrentUser(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]entities.Rotation, error) {
			requestToken, ok := auth.TokenFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, token, requestToken)
			return nil, nil
		}).Times(1)

	w := setup.do(http.MethodGet, "/home", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_sessionMiddleware__should_clear_invalid_auth_cookie(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	expired := testutils.NewTestJWT("johndoe", nil, time.Now().Add(-time.Hour).Unix())

	w := setup.do(http.MethodGet, "/home", nil, expired)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	authCookie := cookie(w, authCookieName)
	if assert.NotNil(t, authCookie) {
		assert.Empty(t, authCookie.Value)
		assert.True(t, authCookie.MaxAge < 0)
	}
}

func Test_toastMiddleware__should_assign_toast_session_to_new_visitor(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	w := httptest.NewRecorder()
	setup.testServer.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tv", nil))

	toastCookie := cookie(w, toastCookieName)
	if assert.NotNil(t, toastCookie) {
		_, err := uuid.Parse(toastCookie.Value)
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, setup.hub.Len())
}

func Test_toastMiddleware__should_replace_malformed_toast_session(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/tv", nil)
	req.AddCookie(&http.Cookie{Name: toastCookieName, Value: "not a uuid"})
	w := httptest.NewRecorder()
	setup.testServer.ServeHTTP(w, req)

	toastCookie := cookie(w, toastCookieName)
	if assert.NotNil(t, toastCookie) {
		assert.NotEqual(t, "not a uuid", toastCookie.Value)
	}
}

func Test_toastMiddleware__should_keep_existing_toast_session(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	w := setup.do(http.MethodGet, "/tv", nil, "")

	assert.Nil(t, cookie(w, toastCookieName))
}

func Test_getSession__should_return_anonymous_session_when_none_attached(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	session := getSession(ctx)

	assert.NotNil(t, session)
	assert.False(t, session.IsLoggedIn())
}

func Test_sendToast__should_not_panic_without_notifier(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotPanics(t, func() {
		setup.router.sendToast(ctx, "hello", entities.ToastInfo)
	})
}
