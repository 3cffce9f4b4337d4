package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var EmptyPayload = &Failure{Code: http.StatusBadRequest, Message: "booking payload is empty"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// MalformedFieldError reports a wire value that could not be converted to its field type.
type MalformedFieldError struct {
	Field string
	Raw   string
	Err   error
}

func (e *MalformedFieldError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s is malformed: %s", e.Field, e.Raw)
	}

	return fmt.Sprintf("%s is malformed: %s: %v", e.Field, e.Raw, e.Err)
}

func (e *MalformedFieldError) Unwrap() error {
	return e.Err
}

// MalformedField returns a new MalformedFieldError for the given wire field and raw input.
func MalformedField(field, raw string, err error) error {
	return &MalformedFieldError{
		Field: field,
		Raw:   raw,
		Err:   err,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	var malformed *MalformedFieldError
	if errors.As(err, &malformed) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
