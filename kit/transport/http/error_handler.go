package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/raguno/raguno/kit/platform/errors"
)

// PlatformErrorCodeHeader shows the error code of a platform error.
const PlatformErrorCodeHeader = "X-Platform-Error-Code"

// ErrorHandler is the error handler in the http package.
type ErrorHandler int

// HandleHTTPError encodes err with the appropriate status code and format,
// sets the X-Platform-Error-Code header on the response and sets the
// response status to the corresponding status code.
func (h ErrorHandler) HandleHTTPError(ctx context.Context, err error, w http.ResponseWriter) {
	if err == nil {
		return
	}

	code := errors.ErrorCode(err)
	httpCode, ok := statusCodePlatformError[code]
	if !ok {
		httpCode = http.StatusBadRequest
	}
	w.Header().Set(PlatformErrorCodeHeader, code)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpCode)
	var e struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	e.Code = code
	if pe, ok := err.(*errors.Error); ok {
		e.Message = pe.Error()
	} else {
		e.Message = "An internal error has occurred"
	}
	// error mirrors message for callers that only read the legacy field
	e.Error = e.Message
	b, _ := json.Marshal(e)
	_, _ = w.Write(b)
}

// statusCodePlatformError converts a platform error code to an HTTP status.
// Conflicts surface as 409 so clients can distinguish an already provisioned
// tenant from a bad request.
var statusCodePlatformError = map[string]int{
	errors.EInternal:            http.StatusInternalServerError,
	errors.EInvalid:             http.StatusBadRequest,
	errors.EUnprocessableEntity: http.StatusUnprocessableEntity,
	errors.EEmptyValue:          http.StatusBadRequest,
	errors.EConflict:            http.StatusConflict,
	errors.ENotFound:            http.StatusNotFound,
	errors.EUnavailable:         http.StatusServiceUnavailable,
	errors.EMethodNotAllowed:    http.StatusMethodNotAllowed,
}
