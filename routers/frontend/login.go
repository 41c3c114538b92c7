package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/services"
	"go.uber.org/zap"
)

func (r *frontendRouter) LoginPage(ctx *gin.Context) {
	if getSession(ctx).IsLoggedIn() {
		ctx.Redirect(http.StatusSeeOther, homePath)
		return
	}

	r.renderPage(ctx, http.StatusOK, loginPage, nil)
}

func (r *frontendRouter) Login(ctx *gin.Context) {
	var credentials entities.Credentials
	err := ctx.ShouldBind(&credentials)
	if err != nil || credentials.Username == "" || credentials.Password == "" {
		r.logger.Debug("username or password was not provided")
		r.sendToast(ctx, "Username and password are required", entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, loginPath)
		return
	}

	response, err := r.authenticationService.Authenticate(ctx.Request.Context(), credentials)
	if err != nil {
		r.logger.Warn("could not authenticate user", zap.String("username", credentials.Username), zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, loginPath)
		return
	}

	r.setAuthCookie(ctx, response.AccessToken)
	ctx.Redirect(http.StatusSeeOther, homePath)
}

func (r *frontendRouter) Logout(ctx *gin.Context) {
	r.clearAuthCookie(ctx)
	ctx.Redirect(http.StatusSeeOther, loginPath)
}
