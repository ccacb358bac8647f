package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/raguno/raguno/kit/platform/errors"
	"go.uber.org/zap"
)

// API provides a consolidated means for handling API interface. It serves
// JSON responses and error bodies in the platform error format.
type API struct {
	logger *zap.Logger

	unmarshalErrFn func(encoding string, err error) error
}

// APIOptFn is a functional option for setting fields on the API type.
type APIOptFn func(*API)

// WithLog sets the logger.
func WithLog(logger *zap.Logger) APIOptFn {
	return func(api *API) {
		api.logger = logger
	}
}

// WithUnmarshalErrFn sets the error fn for issues during unmarshaling.
func WithUnmarshalErrFn(fn func(encoding string, err error) error) APIOptFn {
	return func(api *API) {
		api.unmarshalErrFn = fn
	}
}

// NewAPI creates a new API type.
func NewAPI(opts ...APIOptFn) *API {
	api := API{
		unmarshalErrFn: func(encoding string, err error) error {
			return &errors.Error{
				Code: errors.EInvalid,
				Msg:  "invalid " + encoding + " in request body",
				Err:  err,
			}
		},
	}
	for _, o := range opts {
		o(&api)
	}
	return &api
}

// DecodeJSON decodes reader with json.
func (a *API) DecodeJSON(r io.Reader, v interface{}) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return a.unmarshalErrFn("JSON", err)
	}
	return nil
}

// Respond writes to the response writer, handling all errors in writing.
func (a *API) Respond(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		a.Err(w, r, &errors.Error{
			Code: errors.EInternal,
			Err:  err,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	a.write(w, b)
}

// Err is used for writing an error to the response.
func (a *API) Err(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	a.logErr("api error encountered", err)
	ErrorHandler(0).HandleHTTPError(r.Context(), err, w)
}

func (a *API) write(w http.ResponseWriter, b []byte) {
	if _, err := w.Write(b); err != nil {
		a.logErr("failed to write to response writer", err)
	}
}

func (a *API) logErr(msg string, err error) {
	if a.logger == nil {
		return
	}
	a.logger.Error(msg, zap.Error(err))
}
