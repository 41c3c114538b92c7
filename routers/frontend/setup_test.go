package frontend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/unicsmcr/hs_dashboard/config"
	"github.com/unicsmcr/hs_dashboard/entities"
	mock_services "github.com/unicsmcr/hs_dashboard/mocks/services"
	"github.com/unicsmcr/hs_dashboard/registration"
	"github.com/unicsmcr/hs_dashboard/testutils"
	"github.com/unicsmcr/hs_dashboard/toast"
	"github.com/unicsmcr/hs_dashboard/utils"
	"go.uber.org/zap"
)

const testToastKey = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

var testCfg = config.AppConfig{
	Name: "Suricate",
	Toast: config.ToastConfig{
		HideAfter: 4000 * time.Millisecond,
	},
	Auth: config.AuthConfig{
		CookieMaxAge: 3600,
	},
}

type testSetup struct {
	ctrl                *gomock.Controller
	mockAuthService     *mock_services.MockAuthenticationService
	mockConfigService   *mock_services.MockConfigurationService
	mockRotationService *mock_services.MockRotationService
	hub                 *toast.Hub
	router              *frontendRouter
	testServer          *gin.Engine
}

func setupTest(t *testing.T) *testSetup {
	ctrl := gomock.NewController(t)
	mockAuthService := mock_services.NewMockAuthenticationService(ctrl)
	mockConfigService := mock_services.NewMockConfigurationService(ctrl)
	mockRotationService := mock_services.NewMockRotationService(ctrl)

	timeProvider := utils.NewTimeProvider()
	hub := toast.NewHub(zap.NewNop(), timeProvider)
	cfg := testCfg

	router := &frontendRouter{
		logger:                zap.NewNop(),
		cfg:                   &cfg,
		timeProvider:          timeProvider,
		hub:                   hub,
		registrationFlow:      registration.NewFlow(zap.NewNop(), mockAuthService, mockConfigService),
		authenticationService: mockAuthService,
		rotationService:       mockRotationService,
	}

	gin.SetMode(gin.TestMode)
	testServer := gin.New()
	testServer.LoadHTMLGlob("../../templates/*/*.gohtml")
	router.RegisterRoutes(&testServer.RouterGroup)

	return &testSetup{
		ctrl:                ctrl,
		mockAuthService:     mockAuthService,
		mockConfigService:   mockConfigService,
		mockRotationService: mockRotationService,
		hub:                 hub,
		router:              router,
		testServer:          testServer,
	}
}

func testToken(roles ...string) string {
	return testutils.NewTestJWT("johndoe", roles, time.Now().Add(time.Hour).Unix())
}

// do sends a request to the test server with the toast session cookie and,
// when token is not empty, the auth cookie
func (s *testSetup) do(method, path string, form url.Values, token string) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.AddCookie(&http.Cookie{Name: toastCookieName, Value: testToastKey})
	if token != "" {
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: token})
	}

	w := httptest.NewRecorder()
	s.testServer.ServeHTTP(w, req)
	return w
}

// handlerContext creates a context for calling a handler directly,
// with the notifier of the test visitor attached
func (s *testSetup) handlerContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Set(notifierKey, s.hub.Notifier(testToastKey))
	return ctx, w
}

// pendingToast returns the toast waiting to be displayed to the test visitor
func (s *testSetup) pendingToast() *entities.ToastMessage {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	select {
	case message := <-s.hub.Notifier(testToastKey).Listen(ctx):
		return &message
	default:
		return nil
	}
}

func cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
