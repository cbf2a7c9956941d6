package excepthttp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abraxas-365/exceptkit/errx"
	"github.com/Abraxas-365/exceptkit/exceptx"
	"github.com/Abraxas-365/exceptkit/logx"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invalidEventError struct{ msg string }

func (e *invalidEventError) Error() string { return e.msg }
func (*invalidEventError) Kind() string    { return "InvalidEvent" }

func newHandler() *exceptx.ExceptionHandler {
	quiet := logx.New()
	quiet.SetOutput(io.Discard)
	return exceptx.New(exceptx.WithLogger(quiet)).
		Register(&invalidEventError{}, exceptx.Respond(http.StatusBadRequest))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleWritesHandledResult(t *testing.T) {
	handler := Handle(newHandler(), func(w http.ResponseWriter, r *http.Request) error {
		return &invalidEventError{msg: "bad"}
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/events", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, "bad", body["message"])
	assert.Equal(t, float64(400), body["code"])
}

func TestHandleLeavesSuccessAlone(t *testing.T) {
	handler := Handle(newHandler(), func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusCreated)
		return nil
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/events", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleWritesUnhandledError(t *testing.T) {
	handler := Handle(newHandler(), func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("database down")
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "database down", body["message"])
	assert.Equal(t, string(errx.TypeUnhandled), body["type"])
}

func TestMuxMiddlewareHandlesPanics(t *testing.T) {
	router := mux.NewRouter()
	router.Use(Middleware(newHandler()))
	router.HandleFunc("/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		panic(&invalidEventError{msg: "event " + mux.Vars(r)["id"] + " is malformed"})
	})
	router.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fine"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/42", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "event 42 is malformed", decode(t, rec)["message"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
}

func TestWriteResultPlainValue(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResult(rec, map[string]string{"status": "queued"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "queued", decode(t, rec)["status"])
}
