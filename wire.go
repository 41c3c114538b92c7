//+build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/hs_dashboard/config"
	"github.com/unicsmcr/hs_dashboard/environment"
	"github.com/unicsmcr/hs_dashboard/registration"
	"github.com/unicsmcr/hs_dashboard/routers"
	"github.com/unicsmcr/hs_dashboard/routers/frontend"
	"github.com/unicsmcr/hs_dashboard/services/backend"
	"github.com/unicsmcr/hs_dashboard/toast"
	"github.com/unicsmcr/hs_dashboard/utils"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		registration.NewFlow,
		toast.NewHub,
		backend.NewRotationService,
		backend.NewAuthenticationService,
		backend.NewConfigurationService,
		backend.NewAPIClient,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
