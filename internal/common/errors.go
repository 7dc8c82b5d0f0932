package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden access")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("resource conflict")
	ErrInternalServer = errors.New("internal server error")
	ErrValidation     = errors.New("validation failed")
)

// Machine-readable status codes carried alongside the HTTP status. The
// 51xx range is user errors, 52xx roles, 53xx api keys, 54xx auth tokens.
const (
	CodeUnknown    = 5000
	CodeValidation = 5001

	CodeUserNotFound              = 5100
	CodeUserPasswordNotMatch      = 5101
	CodeUserPasswordAttemptMax    = 5102
	CodeUserBlocked               = 5103
	CodeUserInactive              = 5104
	CodeUserPasswordExpired       = 5105
	CodeUserPasswordNewMustDiffer = 5106

	CodeRoleNotFound = 5200
	CodeRoleInactive = 5201

	CodeAPIKeyRequired     = 5300
	CodeAPIKeyMalformed    = 5301
	CodeAPIKeyNotFound     = 5302
	CodeAPIKeyInactive     = 5303
	CodeAPIKeyNotYetActive = 5304
	CodeAPIKeyExpired      = 5305
	CodeAPIKeyNotMatch     = 5306

	CodeTokenUnauthorized = 5400
)

// StatusError pairs one of the sentinel errors above with a status code and
// a localizable message key. errors.Is sees through to the sentinel.
type StatusError struct {
	kind       error
	Code       int
	MessageKey string
	cause      error
}

func NewStatusError(kind error, code int, messageKey string) *StatusError {
	return &StatusError{kind: kind, Code: code, MessageKey: messageKey}
}

// WithCause returns a copy carrying the underlying error. The shared
// StatusError values below stay immutable.
func (e *StatusError) WithCause(cause error) *StatusError {
	return &StatusError{kind: e.kind, Code: e.Code, MessageKey: e.MessageKey, cause: cause}
}

func (e *StatusError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.MessageKey, e.cause)
	}
	return e.MessageKey
}

func (e *StatusError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

var (
	ErrUserNotFound          = NewStatusError(ErrNotFound, CodeUserNotFound, "user.error.notFound")
	ErrPasswordNotMatch      = NewStatusError(ErrBadRequest, CodeUserPasswordNotMatch, "user.error.passwordNotMatch")
	ErrPasswordAttemptMax    = NewStatusError(ErrForbidden, CodeUserPasswordAttemptMax, "user.error.passwordAttemptMax")
	ErrUserBlocked           = NewStatusError(ErrForbidden, CodeUserBlocked, "user.error.blocked")
	ErrUserInactive          = NewStatusError(ErrForbidden, CodeUserInactive, "user.error.inactive")
	ErrPasswordExpired       = NewStatusError(ErrForbidden, CodeUserPasswordExpired, "user.error.passwordExpired")
	ErrNewPasswordMustDiffer = NewStatusError(ErrBadRequest, CodeUserPasswordNewMustDiffer, "user.error.newPasswordMustDifference")

	ErrRoleNotFound = NewStatusError(ErrNotFound, CodeRoleNotFound, "role.error.notFound")
	ErrRoleInactive = NewStatusError(ErrForbidden, CodeRoleInactive, "role.error.inactive")

	ErrTokenUnauthorized = NewStatusError(ErrUnauthorized, CodeTokenUnauthorized, "auth.error.unauthorized")
)

// Internal wraps an unexpected store or crypto failure. The cause stays in
// the error chain for logging but is never sent to the client.
func Internal(cause error) *StatusError {
	return NewStatusError(ErrInternalServer, CodeUnknown, "http.serverError.internalServerError").WithCause(cause)
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// CodeOf extracts the machine-readable code and message key from an error,
// falling back to the generic internal error pair.
func CodeOf(err error) (int, string) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, se.MessageKey
	}
	return CodeUnknown, "http.serverError.internalServerError"
}
