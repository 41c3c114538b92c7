package entities

type UserField string

const (
	UserUsername        UserField = "username"
	UserFirstname       UserField = "firstname"
	UserLastname        UserField = "lastname"
	UserEmail           UserField = "email"
	UserPassword        UserField = "password"
	UserConfirmPassword UserField = "confirmPassword"
)

// AdminRole is the name of the role granting access to the administration screens
const AdminRole = "ROLE_ADMIN"

// User is a user as returned by the backend
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Roles     []Role `json:"roles,omitempty"`
}

// Role is a security role of a user
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// HasRole tells if the user was granted the role with the given name
func (u User) HasRole(name string) bool {
	for _, role := range u.Roles {
		if role.Name == name {
			return true
		}
	}
	return false
}

// UserRequest is the body sent to the backend to register a new user
type UserRequest struct {
	Username        string `json:"username" form:"username" validate:"required,min=3"`
	Firstname       string `json:"firstname" form:"firstname" validate:"required,min=3"`
	Lastname        string `json:"lastname" form:"lastname" validate:"required,min=3"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=3"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,min=3,eqfield=Password"`
}

// Credentials are the username/password pair used to authenticate against the backend
type Credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// AuthenticationResponse is returned by the backend on successful authentication
type AuthenticationResponse struct {
	AccessToken string `json:"accessToken"`
}
