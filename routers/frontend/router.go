package frontend

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_dashboard/config"
	"github.com/unicsmcr/hs_dashboard/registration"
	"github.com/unicsmcr/hs_dashboard/routers/api/models"
	"github.com/unicsmcr/hs_dashboard/services"
	"github.com/unicsmcr/hs_dashboard/toast"
	"github.com/unicsmcr/hs_dashboard/utils"
	"go.uber.org/zap"
)

// Router is the router serving the pages of the dashboard
type Router interface {
	models.Router
	Root(*gin.Context)
	HomePage(*gin.Context)
	LoginPage(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	RegisterPage(*gin.Context)
	Register(*gin.Context)
	TvPage(*gin.Context)
	DashboardPage(*gin.Context)
	WidgetCreatePage(*gin.Context)
	RotationsPage(*gin.Context)
	CreateRotation(*gin.Context)
	RotationPage(*gin.Context)
	UpdateRotation(*gin.Context)
	DeleteRotation(*gin.Context)
	AddRotationProjects(*gin.Context)
	AddRotationUser(*gin.Context)
	DeleteRotationUser(*gin.Context)
	ToastStream(*gin.Context)
	DismissToast(*gin.Context)
}

type frontendRouter struct {
	models.BaseRouter
	logger                *zap.Logger
	cfg                   *config.AppConfig
	timeProvider          utils.TimeProvider
	hub                   *toast.Hub
	registrationFlow      *registration.Flow
	authenticationService services.AuthenticationService
	rotationService       services.RotationService
}

// NewRouter creates the frontend Router
func NewRouter(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider, hub *toast.Hub,
	registrationFlow *registration.Flow, authenticationService services.AuthenticationService,
	rotationService services.RotationService) Router {
	return &frontendRouter{
		logger:                logger,
		cfg:                   cfg,
		timeProvider:          timeProvider,
		hub:                   hub,
		registrationFlow:      registrationFlow,
		authenticationService: authenticationService,
		rotationService:       rotationService,
	}
}

// RegisterRoutes registers the pages of the route table on the given router group
func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	pagesGroup := routerGroup.Group("", r.sessionMiddleware, r.toastMiddleware)

	for _, route := range r.routes() {
		handlers := []gin.HandlerFunc{withRouteName(route.name)}
		if route.guarded {
			handlers = append(handlers, r.authGuard)
		}
		handlers = append(handlers, route.handler)

		pagesGroup.Handle(route.method, route.path, handlers...)
	}
}
