package exceptx

import (
	"errors"

	"github.com/Abraxas-365/exceptkit/emptyx"
)

type resolverVariant uint8

const (
	variantNone resolverVariant = iota
	variantFunc
	variantStatic
)

// Resolver turns a failing error into a handled result. It is either a
// function of the error or a static value returned as is.
type Resolver struct {
	variant resolverVariant
	fn      func(err error) any
	value   any
}

// Func returns a Resolver that calls fn with the failing error.
func Func(fn func(err error) any) Resolver {
	return Resolver{variant: variantFunc, fn: fn}
}

// Static returns a Resolver that always yields v.
func Static(v any) Resolver {
	return Resolver{variant: variantStatic, value: v}
}

// Typed returns a Resolver whose function receives the first error of type E
// in the chain. If the chain holds no E, fn receives the zero E.
func Typed[E error](fn func(err E) any) Resolver {
	if fn == nil {
		return Func(nil)
	}
	return Func(func(err error) any {
		var target E
		errors.As(err, &target)
		return fn(target)
	})
}

// IsZero reports whether r carries no variant at all.
func (r Resolver) IsZero() bool {
	return r.variant == variantNone
}

// IsStatic reports whether r yields a static value.
func (r Resolver) IsStatic() bool {
	return r.variant == variantStatic
}

// Resolve produces the handled result for err.
func (r Resolver) Resolve(err error) any {
	switch r.variant {
	case variantFunc:
		if r.fn == nil {
			return nil
		}
		return r.fn(err)
	case variantStatic:
		return r.value
	default:
		return nil
	}
}

// check validates r as the built-in handler of a handleable kind.
func (r Resolver) check(kind string) error {
	switch r.variant {
	case variantNone:
		return exceptErrors.New(ErrMissingHandler).WithDetail("kind", kind)
	case variantFunc:
		if r.fn == nil {
			return exceptErrors.New(ErrEmptyHandler).WithDetail("kind", kind)
		}
	case variantStatic:
		if emptyx.Falsy(r.value) {
			return exceptErrors.New(ErrEmptyHandler).WithDetail("kind", kind)
		}
	}
	return nil
}
