package exceptx

import (
	"bytes"
	"testing"

	"github.com/Abraxas-365/exceptkit/logx"
)

// plainError is kinded but carries no handler of its own.
type plainError struct{ msg string }

func (e *plainError) Error() string { return e.msg }
func (*plainError) Kind() string    { return "InvalidEvent" }

// fooError is handleable with a static built-in handler.
type fooError struct{ Base }

func (*fooError) Kind() string { return "Foo" }

func (*fooError) Handler() Resolver {
	return Static(Response{Message: "x", Code: 1})
}

func newFooError(t *testing.T, msg string) *fooError {
	t.Helper()
	e, err := Construct(&fooError{Base: NewBase(msg)})
	if err != nil {
		t.Fatalf("construct fooError: %v", err)
	}
	return e
}

func newCaptureLogger() (*logx.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logx.New()
	l.SetOutput(&buf)
	l.SetColored(false)
	l.SetShowCaller(false)
	l.SetLevel(logx.TraceLevel)
	return l, &buf
}

// bareFooError is handleable but its handler is empty. It is only ever
// built as a literal, never through Construct.
type bareFooError struct {
	Base
	cause error
}

func (*bareFooError) Kind() string { return "BareFoo" }

func (*bareFooError) Handler() Resolver { return Static(nil) }

func (e *bareFooError) Unwrap() error { return e.cause }
