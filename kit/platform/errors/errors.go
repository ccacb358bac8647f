package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes shared across the platform. Handlers key recovery and HTTP
// status selection off these, never off message text.
const (
	EInternal            = "internal error"
	ENotFound            = "not found"
	EConflict            = "conflict" // action cannot be performed
	EInvalid             = "invalid"  // validation failed
	EUnprocessableEntity = "unprocessable entity"
	EEmptyValue          = "empty value"
	EUnavailable         = "unavailable"
	EMethodNotAllowed    = "method not allowed"
)

// Error is the error struct of the platform.
//
// Errors may have error codes, human-readable messages, and a logical stack
// trace. Code targets automated handlers so that recovery can occur; Msg
// helps the operator diagnose the problem; Op and Err chain errors together
// into a logical stack trace.
//
// A minimal error is &Error{Code: ENotFound}. Add Op to show where the
// error happened, Msg to carry an unpredictable value, and Err to wrap an
// underlying error.
type Error struct {
	Code string
	Msg  string
	Op   string
	Err  error
}

// Error implements the error interface by writing out the recursive messages.
func (e *Error) Error() string {
	if e.Msg != "" && e.Err != nil {
		var b strings.Builder
		b.WriteString(e.Msg)
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
		return b.String()
	} else if e.Msg != "" {
		return e.Msg
	} else if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("<%s>", e.Code)
}

// Unwrap exposes the wrapped error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code of the root error, if available; otherwise
// returns EInternal.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	e, ok := err.(*Error)
	if !ok {
		return EInternal
	}

	if e == nil {
		return ""
	}

	if e.Code != "" {
		return e.Code
	}

	if e.Err != nil {
		return ErrorCode(e.Err)
	}

	return EInternal
}

// ErrorOp returns the op of the error, if available; otherwise returns an
// empty string.
func ErrorOp(err error) string {
	if err == nil {
		return ""
	}

	e, ok := err.(*Error)
	if !ok {
		return ""
	}

	if e == nil {
		return ""
	}

	if e.Op != "" {
		return e.Op
	}

	if e.Err != nil {
		return ErrorOp(e.Err)
	}

	return ""
}

// ErrorMessage returns the human-readable message of the error, if
// available. Otherwise returns a generic message.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	e, ok := err.(*Error)
	if !ok {
		return "An internal error has occurred."
	}

	if e == nil {
		return ""
	}

	if e.Msg != "" {
		return e.Msg
	}

	if e.Err != nil {
		return ErrorMessage(e.Err)
	}

	return "An internal error has occurred."
}

// errEncode is a JSON encoding helper needed to handle the recursive stack
// of errors.
type errEncode struct {
	Code string      `json:"code"`
	Msg  string      `json:"message,omitempty"`
	Op   string      `json:"op,omitempty"`
	Err  interface{} `json:"error,omitempty"`
}

// MarshalJSON recursively marshals the stack of Err.
func (e *Error) MarshalJSON() ([]byte, error) {
	ee := errEncode{
		Code: e.Code,
		Msg:  e.Msg,
		Op:   e.Op,
	}
	if e.Err != nil {
		if inner, ok := e.Err.(*Error); ok {
			ee.Err = inner
		} else {
			ee.Err = e.Err.Error()
		}
	}
	return json.Marshal(ee)
}

// UnmarshalJSON recursively unmarshals the error stack.
func (e *Error) UnmarshalJSON(b []byte) error {
	ee := new(errEncode)
	if err := json.Unmarshal(b, ee); err != nil {
		return err
	}
	e.Code = ee.Code
	e.Msg = ee.Msg
	e.Op = ee.Op
	e.Err = decodeInternalError(ee.Err)
	return nil
}

func decodeInternalError(target interface{}) error {
	if errStr, ok := target.(string); ok {
		return errors.New(errStr)
	}
	if m, ok := target.(map[string]interface{}); ok {
		internalErr := new(Error)
		if code, ok := m["code"].(string); ok {
			internalErr.Code = code
		}
		if msg, ok := m["message"].(string); ok {
			internalErr.Msg = msg
		}
		if op, ok := m["op"].(string); ok {
			internalErr.Op = op
		}
		internalErr.Err = decodeInternalError(m["error"])
		return internalErr
	}
	return nil
}

// HTTPErrorHandler is the interface to handle an http error.
type HTTPErrorHandler interface {
	HandleHTTPError(ctx context.Context, err error, w http.ResponseWriter)
}
