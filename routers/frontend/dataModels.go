package frontend

import (
	"github.com/unicsmcr/hs_dashboard/config"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/menu"
	"github.com/unicsmcr/hs_dashboard/registration"
)

type pageDataModel struct {
	Cfg        *config.AppConfig
	Components map[string]interface{}
	CustomPageData
}

type CustomPageData interface{}

type navbarDataModel struct {
	Hidden   bool
	LoggedIn bool
	Username string
	Menu     menu.Configuration
}

type toastDataModel struct {
	StreamPath  string
	DismissPath string
}

type homePageDataModel struct {
	Username  string
	Rotations []entities.Rotation
}

type registerPageDataModel struct {
	Form *registration.Form
}

type dashboardPageDataModel struct {
	DashboardToken string
	GridID         string
	ScreenCode     string
}

type rotationsPageDataModel struct {
	Filter entities.HTTPFilter
	Page   *entities.RotationPage
}

type rotationPageDataModel struct {
	Rotation         *entities.Rotation
	RotationProjects []entities.RotationProject
	Users            []entities.User
	WebsocketClients []entities.WebsocketClient
}
