package frontend

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_dashboard/menu"
)

var (
	navbar = frontendComponent{
		name:         "Navbar",
		dataProvider: navbarDataProvider,
	}

	toastContainer = frontendComponent{
		name:         "Toast",
		dataProvider: toastDataProvider,
	}
)

// the menu is rebuilt on every render so it follows the current session
func navbarDataProvider(ctx *gin.Context, _ *frontendRouter) (interface{}, error) {
	session := getSession(ctx)

	return navbarDataModel{
		Hidden:   menu.ShouldHideMenu(ctx.GetString(routeNameKey)),
		LoggedIn: session.IsLoggedIn(),
		Username: session.Username,
		Menu:     menu.BuildMenu(session.IsAdmin()),
	}, nil
}

func toastDataProvider(_ *gin.Context, _ *frontendRouter) (interface{}, error) {
	return toastDataModel{
		StreamPath:  toastStreamPath,
		DismissPath: toastDismissPath,
	}, nil
}

type frontendComponent struct {
	name         string
	dataProvider frontendComponentDataProvider
}

type frontendComponents []frontendComponent

type frontendComponentDataProvider func(*gin.Context, *frontendRouter) (interface{}, error)
