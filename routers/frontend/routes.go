package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// route describes a page of the dashboard.
// Guarded routes are only accessible with a valid session.
type route struct {
	method  string
	path    string
	name    string
	guarded bool
	handler gin.HandlerFunc
}

func (r *frontendRouter) routes() []route {
	return []route{
		{method: http.MethodGet, path: "/", handler: r.Root},
		{method: http.MethodGet, path: "/home", name: "home", guarded: true, handler: r.HomePage},

		{method: http.MethodGet, path: "/login", name: "login", handler: r.LoginPage},
		{method: http.MethodPost, path: "/login", name: "login", handler: r.Login},
		{method: http.MethodGet, path: "/logout", name: "logout", handler: r.Logout},
		{method: http.MethodGet, path: "/register", name: "register", handler: r.RegisterPage},
		{method: http.MethodPost, path: "/register", name: "register", handler: r.Register},

		{method: http.MethodGet, path: "/tv", name: "tv", handler: r.TvPage},
		{method: http.MethodGet, path: "/dashboards/:dashboardToken", name: "dashboards/:dashboardToken", guarded: true, handler: r.DashboardPage},
		{method: http.MethodGet, path: "/dashboards/:dashboardToken/:gridId", name: "dashboards/:dashboardToken/:gridId", guarded: true, handler: r.DashboardPage},
		{method: http.MethodGet, path: "/dashboards/:dashboardToken/:gridId/widgets/create", name: "dashboards/:dashboardToken/:gridId/widgets/create", guarded: true, handler: r.WidgetCreatePage},

		{method: http.MethodGet, path: "/rotations", name: "rotations", guarded: true, handler: r.RotationsPage},
		{method: http.MethodPost, path: "/rotations", name: "rotations", guarded: true, handler: r.CreateRotation},
		{method: http.MethodGet, path: "/rotations/:rotationToken", name: "rotations/:rotationToken", guarded: true, handler: r.RotationPage},
		{method: http.MethodPost, path: "/rotations/:rotationToken", name: "rotations/:rotationToken", guarded: true, handler: r.UpdateRotation},
		{method: http.MethodPost, path: "/rotations/:rotationToken/delete", name: "rotations/:rotationToken", guarded: true, handler: r.DeleteRotation},
		{method: http.MethodPost, path: "/rotations/:rotationToken/projects", name: "rotations/:rotationToken", guarded: true, handler: r.AddRotationProjects},
		{method: http.MethodPost, path: "/rotations/:rotationToken/users", name: "rotations/:rotationToken", guarded: true, handler: r.AddRotationUser},
		{method: http.MethodPost, path: "/rotations/:rotationToken/users/:userId/delete", name: "rotations/:rotationToken", guarded: true, handler: r.DeleteRotationUser},

		{method: http.MethodGet, path: "/toasts/stream", handler: r.ToastStream},
		{method: http.MethodPost, path: "/toasts/dismiss", handler: r.DismissToast},
	}
}

// Root sends the visitor to the home page
func (r *frontendRouter) Root(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, homePath)
}
