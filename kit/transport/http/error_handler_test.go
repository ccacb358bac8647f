package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/raguno/raguno/kit/platform/errors"
	kithttp "github.com/raguno/raguno/kit/transport/http"
)

func TestEncodeError(t *testing.T) {
	ctx := context.TODO()

	w := httptest.NewRecorder()

	kithttp.ErrorHandler(0).HandleHTTPError(ctx, nil, w)

	if w.Code != 200 {
		t.Errorf("expected status code 200, got: %d", w.Code)
	}
}

func TestEncodeErrorWithError(t *testing.T) {
	ctx := context.TODO()
	err := &errors.Error{
		Code: errors.EInternal,
		Msg:  "an error occurred",
		Err:  fmt.Errorf("there's an error here, be aware"),
	}

	w := httptest.NewRecorder()

	kithttp.ErrorHandler(0).HandleHTTPError(ctx, err, w)

	if w.Code != 500 {
		t.Errorf("expected status code 500, got: %d", w.Code)
	}

	errHeader := w.Header().Get("X-Platform-Error-Code")
	if errHeader != errors.EInternal {
		t.Errorf("expected X-Platform-Error-Code: %s, got: %s", errors.EInternal, errHeader)
	}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if want, got := errors.EInternal, body.Code; want != got {
		t.Errorf("unexpected code -want/+got:\n\t- %q\n\t+ %q", want, got)
	}
	if want, got := "an error occurred: there's an error here, be aware", body.Message; want != got {
		t.Errorf("unexpected message -want/+got:\n\t- %q\n\t+ %q", want, got)
	}
	if body.Error != body.Message {
		t.Errorf("error field should mirror message, got %q", body.Error)
	}
}

func TestEncodeErrorStatusCodes(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{errors.EInvalid, 400},
		{errors.EEmptyValue, 400},
		{errors.EConflict, 409},
		{errors.ENotFound, 404},
		{errors.EUnavailable, 503},
		{errors.EInternal, 500},
	}

	for _, c := range cases {
		t.Run(c.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			kithttp.ErrorHandler(0).HandleHTTPError(context.TODO(), &errors.Error{Code: c.code}, w)
			if w.Code != c.want {
				t.Errorf("code %q: expected status %d, got %d", c.code, c.want, w.Code)
			}
		})
	}
}
