package frontend

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	defaultComponents = frontendComponents{navbar, toastContainer}

	homePage         = newFrontendPage("HomePage", "home.gohtml", defaultComponents)
	loginPage        = newFrontendPage("LoginPage", "login.gohtml", defaultComponents)
	registerPage     = newFrontendPage("RegisterPage", "register.gohtml", defaultComponents)
	tvPage           = newFrontendPage("TvPage", "tv.gohtml", frontendComponents{toastContainer})
	dashboardPage    = newFrontendPage("DashboardPage", "dashboard.gohtml", defaultComponents)
	widgetCreatePage = newFrontendPage("WidgetCreatePage", "widgetCreate.gohtml", defaultComponents)
	rotationsPage    = newFrontendPage("RotationsPage", "rotations.gohtml", defaultComponents)
	rotationPage     = newFrontendPage("RotationPage", "rotation.gohtml", defaultComponents)
)

func newFrontendPage(pageName, templateName string, components frontendComponents) frontendPage {
	return frontendPage{
		name:         pageName,
		templateName: templateName,
		components:   components,
	}
}

type frontendPage struct {
	name         string
	templateName string
	components   frontendComponents
}

// renderPage renders the page with the data of its components.
// A component whose data cannot be provided is left out of the page.
func (r *frontendRouter) renderPage(ctx *gin.Context, status int, page frontendPage, data CustomPageData) {
	components := make(map[string]interface{}, len(page.components))
	for _, component := range page.components {
		model, err := component.dataProvider(ctx, r)
		if err != nil {
			r.logger.Error("could not provide component data",
				zap.String("page", page.name),
				zap.String("component", component.name),
				zap.Error(err))
			continue
		}
		components[component.name] = model
	}

	ctx.HTML(status, page.templateName, pageDataModel{
		Cfg:            r.cfg,
		Components:     components,
		CustomPageData: data,
	})
}
