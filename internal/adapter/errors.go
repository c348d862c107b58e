package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is a non-2xx server answer. It unwraps to one of the
// sentinels above.
type ResponseError struct {
	StatusCode int
	Message    string
	Detail     string

	kind error
}

// NewResponseError builds a ResponseError whose kind follows statusCode.
func NewResponseError(statusCode int, message, detail string) *ResponseError {
	return &ResponseError{
		StatusCode: statusCode,
		Message:    message,
		Detail:     detail,
		kind:       kindOf(statusCode),
	}
}

func kindOf(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusRequestEntityTooLarge:
		return ErrPayloadTooLarge
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("%s (%d)", e.kind, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
