package auth

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/utils/auth/common"
)

// ErrInvalidToken is returned when the access token cannot be parsed or has expired
var ErrInvalidToken = errors.New("invalid token")

// Session is the authentication state of the current visitor.
// The zero value is an anonymous visitor.
type Session struct {
	Token     string
	Username  string
	Roles     []string
	ExpiresAt time.Time
}

// IsLoggedIn tells if the visitor holds an access token
func (s *Session) IsLoggedIn() bool {
	return s != nil && s.Token != ""
}

// IsAdmin tells if the visitor is logged in with the admin role
func (s *Session) IsAdmin() bool {
	if !s.IsLoggedIn() {
		return false
	}
	for _, role := range s.Roles {
		if role == entities.AdminRole {
			return true
		}
	}
	return false
}

// NewSession reads the claims of an access token issued by the backend.
// The signature is not verified here, the backend verifies it on every call.
func NewSession(token string) (*Session, error) {
	var claims common.AuthClaims
	_, _, err := new(jwt.Parser).ParseUnverified(token, &claims)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	err = claims.Valid()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	session := &Session{
		Token:    token,
		Username: claims.Subject,
		Roles:    claims.Roles,
	}
	if claims.ExpiresAt != 0 {
		session.ExpiresAt = time.Unix(claims.ExpiresAt, 0)
	}

	return session, nil
}

type tokenContextKey struct{}

// ContextWithToken returns a copy of ctx carrying the access token to send to the backend
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the access token carried by ctx, if any
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}
