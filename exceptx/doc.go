/*
Package exceptx maps failing errors to handled results.

An ExceptionHandler keeps a table of resolvers keyed by error kind and
wraps operations so that matching errors become results instead of
propagating.

# Kinds

Every error variant declares its kind explicitly:

	type InvalidEventError struct{ msg string }

	func (e *InvalidEventError) Error() string { return e.msg }
	func (*InvalidEventError) Kind() string    { return "InvalidEvent" }

errx.Error is kinded by its code, so registered errx codes work too.

# Registering and wrapping

	h := exceptx.New().
		Register(&InvalidEventError{}, exceptx.Respond(http.StatusBadRequest)).
		Register(exceptx.Named("Timeout"), exceptx.Static(exceptx.Response{Message: "try again", Code: 503}))

	result, err := h.Wrap(ctx, func(ctx context.Context) (any, error) {
		return nil, &InvalidEventError{msg: "bad"}
	})
	// result == exceptx.Response{Message: "bad", Code: 400}, err == nil

Errors nothing resolves come back from Wrap unchanged.

# Handleable errors

An error can carry its own resolver by implementing Handleable. Such
errors are validated once, at construction, with Construct or NewHandled.
A resolver registered on the handler for the same kind takes precedence
over the built-in one.

In strict mode (WithStrictMode(true)) the handler only admits Handleable
kinds; other registrations are refused with a warning.
*/
package exceptx
