package exceptx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Abraxas-365/exceptkit/errx"
	"github.com/stretchr/testify/assert"
)

func TestResolverVariants(t *testing.T) {
	boom := errors.New("boom")

	fn := Func(func(err error) any { return "fn:" + err.Error() })
	assert.False(t, fn.IsZero())
	assert.False(t, fn.IsStatic())
	assert.Equal(t, "fn:boom", fn.Resolve(boom))

	static := Static(42)
	assert.True(t, static.IsStatic())
	assert.Equal(t, 42, static.Resolve(boom))

	var zero Resolver
	assert.True(t, zero.IsZero())
	assert.Nil(t, zero.Resolve(boom))
	assert.Nil(t, Func(nil).Resolve(boom))
}

func TestTypedResolver(t *testing.T) {
	r := Typed(func(e *errx.Error) any {
		if e == nil {
			return "none"
		}
		return string(e.Code)
	})

	wrapped := fmt.Errorf("outer: %w", errx.New("inner", errx.TypeNotFound))
	assert.Equal(t, "NOT_FOUND_ERROR", r.Resolve(wrapped))
	assert.Equal(t, "none", r.Resolve(errors.New("plain")))
}
