package main

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_dashboard/config"
	"github.com/unicsmcr/hs_dashboard/environment"
	"github.com/unicsmcr/hs_dashboard/routers"
	"github.com/unicsmcr/hs_dashboard/toast"
	"go.uber.org/zap"
)

const defaultPort = "8080"

// Server holds the gin engine serving the dashboard and the components living as long as it
type Server struct {
	*gin.Engine
	Port   string
	Logger *zap.Logger
	Cfg    *config.AppConfig
	Hub    *toast.Hub
}

// NewServer creates the gin engine and registers the routes of the main router
func NewServer(mainRouter routers.MainRouter, env *environment.Env, cfg *config.AppConfig, logger *zap.Logger, hub *toast.Hub) Server {
	engine := gin.Default()
	engine.LoadHTMLGlob("templates/*/*.gohtml")

	mainRouter.RegisterRoutes(engine.Group("/"))

	port := env.Get(environment.Port)
	if port == "" {
		port = defaultPort
	}

	return Server{
		Engine: engine,
		Port:   port,
		Logger: logger,
		Cfg:    cfg,
		Hub:    hub,
	}
}
