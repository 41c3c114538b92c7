package services

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidToken is the error returned by services when
	// the rotation token provided in the call to the service is empty
	ErrInvalidToken = errors.New("token was invalid or not provided")
	// ErrUnexpectedResponse is the error returned by services when
	// the backend responded with a body that could not be decoded
	ErrUnexpectedResponse = errors.New("backend response could not be decoded")
)

// APIError is the error returned by services when the backend
// responded with a non-2xx status. It is surfaced as is to the caller.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Key     string `json:"key"`
	// Body is the raw response body
	Body string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend responded with status %d", e.Status)
}

// UserMessage returns a message that can be shown to the user
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "Something went wrong, please try again"
}

// UserMessage returns a message describing err that can be shown to the user
func UserMessage(err error) string {
	if apiErr, ok := errors.Cause(err).(*APIError); ok {
		return apiErr.UserMessage()
	}
	return "The server could not be reached, please try again"
}
