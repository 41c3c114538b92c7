package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TvPage is the public screen displaying the rotation or dashboard paired with its code
func (r *frontendRouter) TvPage(ctx *gin.Context) {
	r.renderPage(ctx, http.StatusOK, tvPage, dashboardPageDataModel{
		ScreenCode: ctx.Query("code"),
	})
}

func (r *frontendRouter) DashboardPage(ctx *gin.Context) {
	r.renderPage(ctx, http.StatusOK, dashboardPage, dashboardPageDataModel{
		DashboardToken: ctx.Param("dashboardToken"),
		GridID:         ctx.Param("gridId"),
	})
}

func (r *frontendRouter) WidgetCreatePage(ctx *gin.Context) {
	r.renderPage(ctx, http.StatusOK, widgetCreatePage, dashboardPageDataModel{
		DashboardToken: ctx.Param("dashboardToken"),
		GridID:         ctx.Param("gridId"),
	})
}
