package exceptx

import "github.com/Abraxas-365/exceptkit/emptyx"

// Kinded is implemented by errors that declare an explicit kind
// discriminant. Resolvers are registered and matched by kind.
type Kinded interface {
	error
	Kind() string
}

// Handleable is implemented by errors that carry their own resolver.
type Handleable interface {
	Kinded
	Handler() Resolver
}

// Base carries the message of a handleable error. Embed it and declare
// Kind and Handler on the embedding type:
//
//	type InvalidEventError struct{ exceptx.Base }
//
//	func (*InvalidEventError) Kind() string { return "InvalidEvent" }
//
//	func (*InvalidEventError) Handler() exceptx.Resolver {
//		return exceptx.Respond(http.StatusBadRequest)
//	}
//
//	func NewInvalidEventError(msg string) (*InvalidEventError, error) {
//		return exceptx.Construct(&InvalidEventError{Base: exceptx.NewBase(msg)})
//	}
//
// Base reports an empty kind, so it never passes Construct on its own.
type Base struct {
	message string
}

// NewBase returns a Base with the given message.
func NewBase(message string) Base {
	return Base{message: message}
}

func (b Base) Error() string { return b.message }

// Message returns the human readable message.
func (b Base) Message() string { return b.message }

// Kind reports no kind. Embedding types declare their own.
func (b Base) Kind() string { return "" }

// Construct validates e against the handleable contract and returns it.
// It fails with ErrAbstractKind when e is nil or declares no kind,
// ErrMissingHandler when its handler has no variant and ErrEmptyHandler
// when its handler is empty.
func Construct[E Handleable](e E) (E, error) {
	var zero E
	if emptyx.Nil(e) {
		return zero, exceptErrors.New(ErrAbstractKind)
	}

	kind := e.Kind()
	if emptyx.String(kind) {
		return zero, exceptErrors.New(ErrAbstractKind).WithDetail("message", e.Error())
	}
	if err := e.Handler().check(kind); err != nil {
		return zero, err
	}
	return e, nil
}

// MustConstruct is like Construct but panics on a contract violation.
func MustConstruct[E Handleable](e E) E {
	e, err := Construct(e)
	if err != nil {
		panic(err)
	}
	return e
}

// HandledError is a ready-made handleable error for kinds that need no
// Go type of their own.
type HandledError struct {
	Base
	kind     string
	resolver Resolver
}

// NewHandled creates a validated handleable error of the given kind.
func NewHandled(kind, message string, resolver Resolver) (*HandledError, error) {
	return Construct(&HandledError{
		Base:     NewBase(message),
		kind:     kind,
		resolver: resolver,
	})
}

// Kind returns the declared kind.
func (e *HandledError) Kind() string { return e.kind }

// Handler returns the built-in resolver.
func (e *HandledError) Handler() Resolver { return e.resolver }

// Is matches any HandledError of the same kind.
func (e *HandledError) Is(target error) bool {
	t, ok := target.(*HandledError)
	return ok && t.kind == e.kind
}

type namedKind string

// Named returns a registration prototype for kind. It is not handleable,
// so strict handlers refuse it.
func Named(kind string) Kinded {
	return namedKind(kind)
}

func (n namedKind) Error() string { return string(n) }
func (n namedKind) Kind() string  { return string(n) }
