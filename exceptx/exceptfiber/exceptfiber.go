// Package exceptfiber plugs an exceptx.ExceptionHandler into fiber.
package exceptfiber

import (
	"context"

	"github.com/Abraxas-365/exceptkit/exceptx"
	"github.com/gofiber/fiber/v2"
)

type served struct{}

// New returns a middleware that runs the rest of the chain through h.
// Handled results are written as JSON; unhandled errors are returned to
// fiber unchanged.
func New(h *exceptx.ExceptionHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := h.Wrap(c.UserContext(), func(ctx context.Context) (any, error) {
			if err := c.Next(); err != nil {
				return nil, err
			}
			return served{}, nil
		})
		if err != nil {
			return err
		}
		if _, ok := result.(served); ok {
			return nil
		}
		return c.Status(exceptx.StatusOf(result)).JSON(result)
	}
}

// ErrorHandler returns a fiber.ErrorHandler that writes errors h resolves
// and passes the rest to next, or to fiber.DefaultErrorHandler when next
// is nil.
func ErrorHandler(h *exceptx.ExceptionHandler, next fiber.ErrorHandler) fiber.ErrorHandler {
	if next == nil {
		next = fiber.DefaultErrorHandler
	}
	return func(c *fiber.Ctx, err error) error {
		if result, ok := h.Resolve(err); ok {
			return c.Status(exceptx.StatusOf(result)).JSON(result)
		}
		return next(c, err)
	}
}
