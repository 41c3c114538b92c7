package common

import (
	"github.com/dgrijalva/jwt-go"
)

// AuthClaims is the model for the claims in the access tokens issued by the backend.
// The username is stored in the subject.
type AuthClaims struct {
	jwt.StandardClaims
	Roles []string `json:"roles"`
}
