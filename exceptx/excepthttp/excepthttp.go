// Package excepthttp renders exceptx results over net/http and gorilla/mux.
package excepthttp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Abraxas-365/exceptkit/errx"
	"github.com/Abraxas-365/exceptkit/exceptx"
	"github.com/gorilla/mux"
)

// HandlerFunc is an http handler that reports failures as errors.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

type served struct{}

// Handle adapts fn to http.Handler. Errors h resolves are written with
// WriteResult; the rest are written with WriteError.
func Handle(h *exceptx.ExceptionHandler, fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serve(h, w, r, func() error { return fn(w, r) })
	})
}

// Middleware returns a mux middleware that converts panics carrying
// errors into handled results.
func Middleware(h *exceptx.ExceptionHandler) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			serve(h, w, r, func() error {
				next.ServeHTTP(w, r)
				return nil
			})
		})
	}
}

func serve(h *exceptx.ExceptionHandler, w http.ResponseWriter, r *http.Request, fn func() error) {
	result, err := h.Wrap(r.Context(), func(ctx context.Context) (any, error) {
		if err := fn(); err != nil {
			return nil, err
		}
		return served{}, nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	if _, ok := result.(served); ok {
		return
	}
	WriteResult(w, result)
}

// WriteResult writes a handled result as JSON with the status chosen by
// exceptx.StatusOf.
func WriteResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(exceptx.StatusOf(result))
	json.NewEncoder(w).Encode(result)
}

// WriteError writes an unhandled error as an errx JSON body.
func WriteError(w http.ResponseWriter, err error) {
	errx.Wrap(err, err.Error(), errx.TypeUnhandled).ToHTTP(w)
}
