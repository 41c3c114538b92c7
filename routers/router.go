package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_dashboard/routers/api/models"
	"github.com/unicsmcr/hs_dashboard/routers/frontend"
	"go.uber.org/zap"
)

// MainRouter is the router registering all the routes of the service
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	frontendRouter frontend.Router
}

// NewMainRouter creates a new MainRouter
func NewMainRouter(logger *zap.Logger, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers the heartbeat and the frontend routes on the given router group
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/heartbeat", r.Heartbeat)

	r.frontendRouter.RegisterRoutes(routerGroup)
}
