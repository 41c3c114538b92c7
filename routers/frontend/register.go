package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/registration"
	"github.com/unicsmcr/hs_dashboard/services"
	"go.uber.org/zap"
)

func (r *frontendRouter) RegisterPage(ctx *gin.Context) {
	if redirect := r.registrationFlow.Entry(ctx.Request.Context(), getSession(ctx)); redirect != "" {
		ctx.Redirect(http.StatusSeeOther, redirect)
		return
	}

	r.renderPage(ctx, http.StatusOK, registerPage, registerPageDataModel{
		Form: registration.NewForm(),
	})
}

// Register validates the form before asking the backend anything
func (r *frontendRouter) Register(ctx *gin.Context) {
	if getSession(ctx).IsLoggedIn() {
		ctx.Redirect(http.StatusSeeOther, homePath)
		return
	}

	var request entities.UserRequest
	err := ctx.ShouldBind(&request)
	if err != nil {
		r.logger.Debug("could not bind register form", zap.Error(err))
	}

	form := registration.NewForm()
	form.Bind(request)

	token, err := r.registrationFlow.Submit(ctx.Request.Context(), form, r.toastSender(ctx))
	if errors.Cause(err) == registration.ErrRegistrationDisabled {
		ctx.Redirect(http.StatusSeeOther, loginPath)
		return
	}
	if err != nil {
		status := http.StatusOK
		if errors.Cause(err) == registration.ErrInvalidForm {
			status = http.StatusBadRequest
		} else {
			r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
		}

		r.renderPage(ctx, status, registerPage, registerPageDataModel{
			Form: form,
		})
		return
	}

	r.setAuthCookie(ctx, token)
	ctx.Redirect(http.StatusSeeOther, homePath)
}
