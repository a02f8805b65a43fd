package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Domain packages declare their sentinels as *Failure values and wrap them with
// fmt.Errorf("%w: ...") so that GetCode still resolves the status.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam        = New(http.StatusBadRequest, "invalid page parameter")
	InvalidLimitParam       = New(http.StatusBadRequest, "invalid limit parameter")
	InvalidIDParam          = New(http.StatusBadRequest, "invalid id parameter")
	ForbiddenError          = New(http.StatusForbidden, "You don't have the required permissions")
	ResourceRestrictedError = New(http.StatusForbidden, "You don't have permission to access this resource")
)

// New declares a Failure. Use it for package-level sentinels.
func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return New(http.StatusBadRequest, err.Error())
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return New(http.StatusInternalServerError, err.Error())
	}

	return nil
}

func NotFound(entityName string) error {
	return New(http.StatusNotFound, entityName)
}

func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsFailure reports whether err carries a Failure anywhere in its chain.
func IsFailure(err error) bool {
	var fail *Failure
	return errors.As(err, &fail)
}
