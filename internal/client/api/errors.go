package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the request never reached the backend.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the backend rejected the credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// fallbackMessage is surfaced when a non-2xx response carries no usable
// message field.
const fallbackMessage = "API request failed"

// RequestError is an application-level rejection: the backend answered with a
// non-success status and (usually) a message meant for the user.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Is lets errors.Is(err, ErrUnauthorized) match credential rejections.
func (e *RequestError) Is(target error) bool {
	return target == ErrUnauthorized && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}
