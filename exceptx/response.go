package exceptx

import (
	"errors"
	"net/http"

	"github.com/Abraxas-365/exceptkit/errx"
)

// Response is the conventional handled result for API errors.
type Response struct {
	Message string         `json:"message"`
	Code    int            `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// StatusCode returns Code when it is a valid HTTP status, 500 otherwise.
func (r Response) StatusCode() int {
	if r.Code >= 100 && r.Code <= 599 {
		return r.Code
	}
	return http.StatusInternalServerError
}

// StatusCoder is implemented by results that choose their HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// Respond returns a resolver producing Response{Message: err.Error(), Code: code}.
// The message of an errx.Error is used without its code prefix.
func Respond(code int) Resolver {
	return Func(func(err error) any {
		msg := err.Error()
		var xerr *errx.Error
		if errors.As(err, &xerr) {
			msg = xerr.Message
		}
		return Response{Message: msg, Code: code}
	})
}

// ErrxResponse renders an errx.Error as a Response using its own status
// and details.
var ErrxResponse = Typed(func(e *errx.Error) any {
	if e == nil {
		return Response{Message: http.StatusText(http.StatusInternalServerError), Code: http.StatusInternalServerError}
	}
	status := e.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Response{Message: e.Message, Code: status, Details: e.Details}
})

// StatusOf picks the HTTP status for a handled result.
func StatusOf(result any) int {
	switch r := result.(type) {
	case StatusCoder:
		return r.StatusCode()
	case *errx.Error:
		if r.HTTPStatus != 0 {
			return r.HTTPStatus
		}
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}
