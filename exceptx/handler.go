package exceptx

import (
	"context"
	"sort"
	"sync"

	"github.com/Abraxas-365/exceptkit/asyncx"
	"github.com/Abraxas-365/exceptkit/emptyx"
	"github.com/google/uuid"
)

// Operation is the unit of work run by Wrap.
type Operation func(ctx context.Context) (any, error)

// ExceptionHandler maps failing errors to handled results through
// resolvers registered by kind, falling back to the error's own handler.
type ExceptionHandler struct {
	id        string
	strict    bool
	log       Logger
	mu        sync.RWMutex
	resolvers map[string]Resolver
}

// New creates a handler with an empty registry. Handlers are non-strict
// unless WithStrictMode(true) is given.
func New(opts ...Option) *ExceptionHandler {
	h := &ExceptionHandler{
		id:        uuid.NewString(),
		log:       defaultLogger(),
		resolvers: make(map[string]Resolver),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ID identifies the handler in diagnostics.
func (h *ExceptionHandler) ID() string { return h.id }

// Strict reports whether the handler refuses non-handleable kinds.
func (h *ExceptionHandler) Strict() bool { return h.strict }

// Register installs r for the kind of proto and returns h for chaining.
// A typed nil pointer such as (*InvalidEventError)(nil) is accepted as a
// prototype when its Kind method does not dereference the receiver.
//
// In strict mode a proto that is not Handleable is refused with a warning.
// Registering a kind twice warns and replaces the previous resolver.
func (h *ExceptionHandler) Register(proto Kinded, r Resolver) *ExceptionHandler {
	kind, ok := kindOf(proto)
	if !ok {
		h.log.Warn("exceptx[%s]: refusing to register a nil error kind", h.id)
		return h
	}
	if emptyx.String(kind) {
		h.log.Warn("exceptx[%s]: refusing to register an error without a kind", h.id)
		return h
	}

	if _, ok := proto.(Handleable); h.strict && !ok {
		h.log.Warn("exceptx[%s]: strict mode refuses %q: kind does not implement exceptx.Handleable", h.id, kind)
		return h
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.resolvers[kind]; exists {
		h.log.Warn("exceptx[%s]: duplicate registration for %q, replacing the installed resolver", h.id, kind)
	}
	h.resolvers[kind] = r
	return h
}

// Kinds returns the registered kinds in sorted order.
func (h *ExceptionHandler) Kinds() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	kinds := make([]string, 0, len(h.resolvers))
	for kind := range h.resolvers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func (h *ExceptionHandler) lookup(kind string) (Resolver, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	r, ok := h.resolvers[kind]
	return r, ok
}

// Resolve converts err into a handled result. It reports false, and the
// caller keeps err, when neither a registered resolver nor a built-in
// handler applies.
//
// The chain of err is walked in unwrap order. The first error whose kind
// is registered wins; otherwise the first handleable error with a valid
// handler resolves it.
func (h *ExceptionHandler) Resolve(err error) (any, bool) {
	if err == nil {
		return nil, false
	}

	var (
		matched  Kinded
		resolver Resolver
		builtIn  Handleable
	)
	walkChain(err, func(e error) bool {
		kinded, ok := e.(Kinded)
		if !ok {
			return false
		}
		if r, ok := h.lookup(kinded.Kind()); ok {
			matched, resolver = kinded, r
			return true
		}
		if handleable, ok := e.(Handleable); ok && builtIn == nil {
			if cerr := handleable.Handler().check(handleable.Kind()); cerr != nil {
				h.log.Warn("exceptx[%s]: ignoring the built-in handler of %q: %v", h.id, handleable.Kind(), cerr)
				return false
			}
			builtIn = handleable
		}
		return false
	})

	if matched != nil {
		kind := matched.Kind()
		if _, handleable := matched.(Handleable); handleable {
			h.log.Trace("exceptx[%s]: registered resolver for %q takes precedence over its built-in handler", h.id, kind)
		}
		result := resolver.Resolve(err)
		h.log.Trace("exceptx[%s]: resolved %q -> %v", h.id, kind, result)
		return result, true
	}

	if builtIn != nil {
		result := builtIn.Handler().Resolve(err)
		h.log.Trace("exceptx[%s]: %q resolved by its built-in handler -> %v", h.id, builtIn.Kind(), result)
		return result, true
	}

	return nil, false
}

// walkChain visits err and its wrapped errors depth first, in the order
// errors.As uses, until visit returns true.
func walkChain(err error, visit func(error) bool) bool {
	for err != nil {
		if visit(err) {
			return true
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if walkChain(inner, visit) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}
	return false
}

// kindOf reads the kind of proto. It reports false for a nil prototype or
// one whose Kind method cannot run on a nil receiver.
func kindOf(proto Kinded) (kind string, ok bool) {
	if proto == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			kind, ok = "", false
		}
	}()
	return proto.Kind(), true
}

// Wrap runs op and converts a failure into a handled result. A panic
// carrying an error is treated like a returned error. Errors nothing
// resolves are returned unchanged.
func (h *ExceptionHandler) Wrap(ctx context.Context, op Operation) (any, error) {
	result, err := h.run(ctx, op)
	if err == nil {
		return result, nil
	}

	if handled, ok := h.Resolve(err); ok {
		return handled, nil
	}
	return nil, err
}

func (h *ExceptionHandler) run(ctx context.Context, op Operation) (result any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			perr, ok := rec.(error)
			if !ok {
				panic(rec)
			}
			result, err = nil, perr
		}
	}()
	return op(ctx)
}

// Go runs Wrap in its own goroutine.
func (h *ExceptionHandler) Go(ctx context.Context, op Operation) *asyncx.Future[any] {
	return asyncx.Go(ctx, func(ctx context.Context) (any, error) {
		return h.Wrap(ctx, op)
	})
}

// WrapAll wraps every op concurrently and returns the results in order.
// The first error no resolver handles is returned.
func (h *ExceptionHandler) WrapAll(ctx context.Context, ops ...Operation) ([]any, error) {
	return asyncx.All(ctx, ops, func(ctx context.Context, op Operation) (any, error) {
		return h.Wrap(ctx, op)
	})
}
