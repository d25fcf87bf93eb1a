// Package apierror holds the error values the service layer hands back to
// the routes. Business failures are values of ErrorResponse, not raised
// panics, so every caller has to handle every case.
package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse interface {
	error
	Code() int
	// WithToolCall returns a copy carrying the tool-call identifier so the
	// assistant platform can correlate the error with its function call.
	WithToolCall(id string) ErrorResponse
}

type simpleError struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	ToolCallID string `json:"toolCallId,omitempty"`
	code       int
}

func (e *simpleError) Error() string {
	return e.Message
}

func (e *simpleError) Code() int {
	return e.code
}

func (e *simpleError) WithToolCall(id string) ErrorResponse {
	clone := *e
	clone.ToolCallID = id
	return &clone
}

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{Status: "error", Message: message, code: code}
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Something went wrong on our side, please try again")
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Request body could not be understood")
	InvalidDateError    = NewSimple(http.StatusBadRequest, "Could not understand the requested date")
	SlotConflictError   = NewSimple(http.StatusConflict, "That time slot is already booked")
	NotFoundError       = NewSimple(http.StatusNotFound, "No matching appointment was found")
	NoSlotsFoundError   = NewSimple(http.StatusNotFound, "No available slots in the next 30 days")
)

// NewNonBusinessDayError names the day being refused, e.g.
// "2026-03-07 is a Saturday" or "2026-07-03 is Independence Day".
func NewNonBusinessDayError(date, reason string) ErrorResponse {
	msg := fmt.Sprintf("%s is %s; appointments are booked Monday through Friday, excluding holidays", date, reason)
	return NewSimple(http.StatusBadRequest, msg)
}

func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0]
		msg := fmt.Sprintf("Field %q failed validation on rule %q", field.Field(), field.Tag())
		return NewSimple(http.StatusBadRequest, msg)
	}
	return MalformedBodyError
}
