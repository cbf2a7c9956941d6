package exceptx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Abraxas-365/exceptkit/errx"
	"github.com/stretchr/testify/assert"
)

func TestResponseStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Response{Code: 400}.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Response{Code: 1}.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Response{Code: 600}.StatusCode())
}

func TestRespond(t *testing.T) {
	r := Respond(http.StatusConflict)

	assert.Equal(t, Response{Message: "taken", Code: 409}, r.Resolve(errors.New("taken")))
	assert.Equal(t,
		Response{Message: "already there", Code: 409},
		r.Resolve(errx.New("already there", errx.TypeConflict)),
	)
}

func TestErrxResponse(t *testing.T) {
	assert.Equal(t,
		Response{Message: "missing", Code: http.StatusInternalServerError},
		ErrxResponse.Resolve(errx.New("missing", errx.TypeNotFound)),
	)
	assert.Equal(t,
		Response{Message: "Internal Server Error", Code: http.StatusInternalServerError},
		ErrxResponse.Resolve(errors.New("plain")),
	)
}

func TestStatusOf(t *testing.T) {
	withStatus := errx.New("gone", errx.TypeNotFound)
	withStatus.HTTPStatus = http.StatusGone

	assert.Equal(t, http.StatusTeapot, StatusOf(Response{Code: 418}))
	assert.Equal(t, http.StatusGone, StatusOf(withStatus))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errx.New("x", errx.TypeInternal)))
	assert.Equal(t, http.StatusOK, StatusOf("plain result"))
	assert.Equal(t, http.StatusOK, StatusOf(nil))
}
