package frontend

import (
	"io"
	"net/http"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_dashboard/routers/api/models"
	"github.com/unicsmcr/hs_dashboard/toast"
)

const (
	toastStreamPath  = "/toasts/stream"
	toastDismissPath = "/toasts/dismiss"

	toastEvent = "toast"
)

// ToastStream streams the state of the visitor's toast display as server-sent events
func (r *frontendRouter) ToastStream(ctx *gin.Context) {
	notifier, ok := getNotifier(ctx)
	if !ok {
		models.SendAPIError(ctx, http.StatusInternalServerError, "no toast session")
		return
	}

	requestCtx := ctx.Request.Context()
	display := toast.NewDisplay(r.logger, r.timeProvider, r.cfg.Toast.HideAfter)
	display.Listen(requestCtx, notifier)
	defer display.Close()

	ctx.Header("Cache-Control", "no-cache")
	ctx.Stream(func(w io.Writer) bool {
		select {
		case state, ok := <-display.Updates():
			if !ok {
				return false
			}
			ctx.Render(-1, sse.Event{
				Event: toastEvent,
				Data:  state,
			})
			return true
		case <-requestCtx.Done():
			return false
		}
	})
}

// DismissToast hides the toast shown to the visitor
func (r *frontendRouter) DismissToast(ctx *gin.Context) {
	notifier, ok := getNotifier(ctx)
	if !ok {
		models.SendAPIError(ctx, http.StatusInternalServerError, "no toast session")
		return
	}

	notifier.Dismiss()
	ctx.Status(http.StatusNoContent)
}
