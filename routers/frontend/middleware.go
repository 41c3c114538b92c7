package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/toast"
	"github.com/unicsmcr/hs_dashboard/utils/auth"
	"go.uber.org/zap"
)

const (
	authCookieName  = "Authorization"
	toastCookieName = "ToastSession"

	sessionKey   = "session"
	notifierKey  = "toastNotifier"
	routeNameKey = "routeName"

	homePath  = "/home"
	loginPath = "/login"
)

// sessionMiddleware reads the session from the auth cookie and attaches
// the access token to the request context for the calls to the backend
func (r *frontendRouter) sessionMiddleware(ctx *gin.Context) {
	session := &auth.Session{}

	token, err := ctx.Cookie(authCookieName)
	if err == nil && token != "" {
		parsed, err := auth.NewSession(token)
		if err != nil {
			r.logger.Debug("invalid access token in auth cookie", zap.Error(err))
			r.clearAuthCookie(ctx)
		} else {
			session = parsed
			ctx.Request = ctx.Request.WithContext(auth.ContextWithToken(ctx.Request.Context(), session.Token))
		}
	}

	ctx.Set(sessionKey, session)
}

// toastMiddleware attaches the toast notifier of the visitor, identified by the toast session cookie
func (r *frontendRouter) toastMiddleware(ctx *gin.Context) {
	key, err := ctx.Cookie(toastCookieName)
	if err != nil {
		key = ""
	}

	if _, err := uuid.Parse(key); err != nil {
		key = uuid.New().String()
		ctx.SetCookie(toastCookieName, key, 0, "/", "", false, true)
	}

	ctx.Set(notifierKey, r.hub.Notifier(key))
}

func (r *frontendRouter) authGuard(ctx *gin.Context) {
	if !getSession(ctx).IsLoggedIn() {
		r.logger.Debug("visitor is not logged in", zap.String("path", ctx.Request.URL.Path))
		ctx.Redirect(http.StatusSeeOther, loginPath)
		ctx.Abort()
	}
}

func withRouteName(name string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(routeNameKey, name)
	}
}

func getSession(ctx *gin.Context) *auth.Session {
	if value, exists := ctx.Get(sessionKey); exists {
		if session, ok := value.(*auth.Session); ok {
			return session
		}
	}
	return &auth.Session{}
}

func getNotifier(ctx *gin.Context) (*toast.Notifier, bool) {
	value, exists := ctx.Get(notifierKey)
	if !exists {
		return nil, false
	}
	notifier, ok := value.(*toast.Notifier)
	return notifier, ok
}

// discards the messages sent outside of the toast middleware
type loggingSender struct {
	logger *zap.Logger
}

func (s loggingSender) SendMessage(text string, _ entities.ToastType) {
	s.logger.Warn("no toast notifier attached to request", zap.String("message", text))
}

func (r *frontendRouter) toastSender(ctx *gin.Context) toast.Sender {
	if notifier, ok := getNotifier(ctx); ok {
		return notifier.FlashSender()
	}
	return loggingSender{logger: r.logger}
}

func (r *frontendRouter) sendToast(ctx *gin.Context, text string, toastType entities.ToastType) {
	r.toastSender(ctx).SendMessage(text, toastType)
}

func (r *frontendRouter) setAuthCookie(ctx *gin.Context, token string) {
	ctx.SetCookie(authCookieName, token, r.cfg.Auth.CookieMaxAge, "/", "", false, true)
}

func (r *frontendRouter) clearAuthCookie(ctx *gin.Context) {
	ctx.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
