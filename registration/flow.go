package registration

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/services"
	"github.com/unicsmcr/hs_dashboard/toast"
	"github.com/unicsmcr/hs_dashboard/utils/auth"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v8"
)

const (
	homePath  = "/home"
	loginPath = "/login"

	invalidFormMessage = "Some fields are not properly filled"
)

var (
	// ErrInvalidForm is returned when the submitted form does not pass validation
	ErrInvalidForm = errors.New("some fields are not properly filled")
	// ErrRegistrationDisabled is returned when users are managed by an external directory
	ErrRegistrationDisabled = errors.New("registration is disabled")
)

// maps the fields of entities.UserRequest to the form fields
var requestFields = map[string]entities.UserField{
	"Username":        entities.UserUsername,
	"Firstname":       entities.UserFirstname,
	"Lastname":        entities.UserLastname,
	"Email":           entities.UserEmail,
	"Password":        entities.UserPassword,
	"ConfirmPassword": entities.UserConfirmPassword,
}

// Flow drives the registration of a new user: register with the backend, then sign in
type Flow struct {
	logger                *zap.Logger
	authenticationService services.AuthenticationService
	configurationService  services.ConfigurationService
	validate              *validator.Validate
}

// NewFlow creates a registration Flow
func NewFlow(logger *zap.Logger, authenticationService services.AuthenticationService, configurationService services.ConfigurationService) *Flow {
	return &Flow{
		logger:                logger,
		authenticationService: authenticationService,
		configurationService:  configurationService,
		validate:              validator.New(&validator.Config{TagName: "validate"}),
	}
}

// Entry returns where the visitor should be redirected instead of seeing the register form,
// an empty string when the form should be shown
func (f *Flow) Entry(ctx context.Context, session *auth.Session) string {
	if session.IsLoggedIn() {
		return homePath
	}

	if f.managedExternally(ctx) {
		return loginPath
	}

	return ""
}

// managedExternally reports whether users are managed by LDAP.
// A failed lookup is logged and treated as database managed users.
func (f *Flow) managedExternally(ctx context.Context) bool {
	provider, err := f.configurationService.GetAuthenticationProvider(ctx)
	if err != nil {
		f.logger.Warn("could not fetch authentication provider", zap.Error(err))
		return false
	}

	if provider != nil && provider.Value == string(entities.LDAPProvider) {
		f.logger.Debug("users are managed by LDAP, registration is disabled")
		return true
	}

	return false
}

// Validate checks the form values and sets the errors of the fields.
// Returns true when the form is valid.
func (f *Flow) Validate(form *Form) bool {
	form.clearErrors()

	request := form.Request()
	err := f.validate.Struct(&request)
	if err == nil {
		return true
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		f.logger.Error("could not validate register form", zap.Error(err))
		return false
	}

	for _, fieldErr := range validationErrs {
		field := form.Field(requestFields[fieldErr.Field])
		if field == nil {
			continue
		}
		field.Errors = append(field.Errors, errorMessage(fieldErr))
	}

	return form.Valid()
}

// Submit validates the form and registers the user. When the registration succeeds
// the user is signed in with the submitted username and password and the access token is returned.
// An invalid form is never sent to the backend.
func (f *Flow) Submit(ctx context.Context, form *Form, sender toast.Sender) (string, error) {
	if !f.Validate(form) {
		f.logger.Debug("register form is invalid")
		sender.SendMessage(invalidFormMessage, entities.ToastDanger)
		return "", ErrInvalidForm
	}

	if f.managedExternally(ctx) {
		return "", ErrRegistrationDisabled
	}

	form.Submitting = true
	request := form.Request()

	_, err := f.authenticationService.Register(ctx, request)
	if err != nil {
		form.Submitting = false
		f.logger.Warn("could not register user", zap.String("username", request.Username), zap.Error(err))
		return "", errors.Wrap(err, "could not register user")
	}

	response, err := f.authenticationService.Authenticate(ctx, entities.Credentials{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		form.Submitting = false
		f.logger.Warn("could not authenticate registered user", zap.String("username", request.Username), zap.Error(err))
		return "", errors.Wrap(err, "could not authenticate user")
	}

	return response.AccessToken, nil
}

func errorMessage(fieldErr *validator.FieldError) string {
	switch fieldErr.Tag {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s characters", fieldErr.Param)
	case "email":
		return "Invalid email address"
	case "eqfield":
		return "Passwords do not match"
	default:
		return "Invalid value"
	}
}
