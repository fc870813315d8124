package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError is a domain failure with a stable code. Handlers map codes to
// HTTP statuses; the wrapped cause never reaches the response body.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// WrapError attaches an underlying cause to a domain error.
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

var (
	// Not found
	ErrBootcampNotFound = NewDomainError("NOT_FOUND", "bootcamp not found")
	ErrCourseNotFound   = NewDomainError("NOT_FOUND", "course not found")
	ErrUserNotFound     = NewDomainError("NOT_FOUND", "user not found")

	// Validation
	ErrInvalidInput   = NewDomainError("VALIDATION_FAILED", "invalid input")
	ErrEmailExists    = NewDomainError("EMAIL_EXISTS", "email already registered")
	ErrInvalidUpload  = NewDomainError("INVALID_UPLOAD", "upload must be an image within the size limit")
	ErrInvalidZipcode = NewDomainError("INVALID_ZIPCODE", "zipcode could not be resolved")

	// Authentication
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "unauthorized")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "invalid credentials")
	ErrInvalidToken       = NewDomainError("INVALID_TOKEN", "invalid or expired token")

	// Collaborators
	ErrUpstream = NewDomainError("UPSTREAM_ERROR", "upstream data error")
	ErrInternal = NewDomainError("INTERNAL_ERROR", "internal server error")
)

// GetDomainError extracts the domain error from an error chain, nil if absent.
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps an error to its response status. Unknown errors are
// treated as internal failures.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	domainErr := GetDomainError(err)
	if domainErr == nil {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "VALIDATION_FAILED", "EMAIL_EXISTS", "INVALID_UPLOAD", "INVALID_ZIPCODE":
		return http.StatusBadRequest
	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "INVALID_TOKEN":
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage returns the client-safe message for an error.
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Message
	}
	return ErrInternal.Message
}
