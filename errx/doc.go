/*
Package errx provides the structured error type used across exceptx.

Errors carry a code, a category type, a message, optional details and an
HTTP status. The code doubles as the error's kind, so any registered
errx code can be matched by an exceptx.ExceptionHandler.

# Error Registry

Each package declares its own prefixed registry:

	var (
		eventErrors = errx.NewRegistry("EVENT")

		ErrInvalidEvent = eventErrors.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid event")
	)

	err := eventErrors.New(ErrInvalidEvent).WithDetail("event_id", id)

# Checking

	if errx.IsCode(err, ErrInvalidEvent) {
		// Handle specific error code
	}

# Rendering

	e.ToHTTP(w)     // net/http
	return e.ToFiber(c) // fiber
*/
package errx
