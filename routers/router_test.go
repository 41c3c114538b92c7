package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	mock_frontend "github.com/unicsmcr/hs_dashboard/mocks/routers/frontend"
	"github.com/unicsmcr/hs_dashboard/testutils"
	"go.uber.org/zap"
)

func Test_RegisterRoutes__should_register_required_routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockFrontendRouter := mock_frontend.NewMockRouter(ctrl)

	// checking the frontend router gets registered on /
	mockFrontendRouter.EXPECT().RegisterRoutes(testutils.RouterGroupMatcher{Path: "/"}).Times(1)

	router := NewMainRouter(zap.NewNop(), mockFrontendRouter)

	w := httptest.NewRecorder()
	_, testServer := gin.CreateTestContext(w)
	router.RegisterRoutes(&testServer.RouterGroup)

	tests := []struct {
		route  string
		method string
	}{
		{
			route:  "/heartbeat",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.route, nil)

			testServer.ServeHTTP(w, req)

			// making sure route is defined
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}
