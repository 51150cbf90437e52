package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface {
	sides() int
}

type circle struct{}

func (circle) sides() int { return 0 }

type square struct{}

func (square) sides() int { return 4 }

//
// -----------------------------------------------------------------------------
// New / Provide
// -----------------------------------------------------------------------------

// TestNew_Empty verifies New initializes a non-nil registry with no constructors.
func TestNew_Empty(t *testing.T) {
	t.Parallel()

	r := New[shape]()
	require.NotNil(t, r)
	require.NotNil(t, r.ctors)
	assert.Len(t, r.ctors, 0)
}

// TestProvide_ChainsAndStores verifies Provide stores constructors and
// returns the same registry for chaining.
func TestProvide_ChainsAndStores(t *testing.T) {
	t.Parallel()

	r := New[shape]()

	ret := r.Provide("circle", func() shape { return circle{} }).
		Provide("square", func() shape { return square{} })
	require.Same(t, r, ret)

	ctor, ok := r.Lookup("circle")
	require.True(t, ok)
	assert.Equal(t, 0, ctor().sides())

	ctor, ok = r.Lookup("square")
	require.True(t, ok)
	assert.Equal(t, 4, ctor().sides())
}

// TestProvide_Replaces verifies a second Provide under the same tag wins.
func TestProvide_Replaces(t *testing.T) {
	t.Parallel()

	r := New[shape]().
		Provide("it", func() shape { return circle{} }).
		Provide("it", func() shape { return square{} })

	got, err := r.Make("it")
	require.NoError(t, err)
	assert.Equal(t, 4, got.sides())
}

//
// -----------------------------------------------------------------------------
// Lookup
// -----------------------------------------------------------------------------

// TestLookup_Missing verifies Lookup returns (nil,false) for missing tags.
func TestLookup_Missing(t *testing.T) {
	t.Parallel()

	r := New[shape]()
	ctor, ok := r.Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, ctor)
}

//
// -----------------------------------------------------------------------------
// Make
// -----------------------------------------------------------------------------

// TestMake_DispatchesPerVariant verifies each tag constructs its own concrete variant.
func TestMake_DispatchesPerVariant(t *testing.T) {
	t.Parallel()

	r := New[shape]().
		Provide("circle", func() shape { return circle{} }).
		Provide("square", func() shape { return square{} })

	c, err := r.Make("circle")
	require.NoError(t, err)
	assert.IsType(t, circle{}, c)

	s, err := r.Make("square")
	require.NoError(t, err)
	assert.IsType(t, square{}, s)
}

// TestMake_UnknownTag verifies Make returns a typed error carrying the tag.
func TestMake_UnknownTag(t *testing.T) {
	t.Parallel()

	r := New[shape]()

	got, err := r.Make("triangle")
	require.Error(t, err)
	assert.Nil(t, got)

	var unknown UnknownTagError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, Tag("triangle"), unknown.Tag)
	assert.Equal(t, `factory: unknown variant tag "triangle"`, err.Error())
}

// TestMake_RecoversFromConstructorPanic verifies Make converts a panicking
// constructor into ErrConstructorPanic instead of unwinding the caller.
func TestMake_RecoversFromConstructorPanic(t *testing.T) {
	t.Parallel()

	r := New[shape]().Provide("bad", func() shape { panic("ctor exploded") })

	got, err := r.Make("bad")
	require.Error(t, err)
	assert.Nil(t, got)

	assert.True(t, errors.Is(err, ErrConstructorPanic), "expected ErrConstructorPanic wrapping, got: %v", err)
	assert.Contains(t, err.Error(), "ctor exploded")
}

// TestMake_NilReceiver verifies Make on a nil registry surfaces the internal
// panic as an error rather than crashing.
func TestMake_NilReceiver(t *testing.T) {
	t.Parallel()

	var r *Registry[shape] // nil receiver

	got, err := r.Make("circle")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrConstructorPanic))
}

//
// -----------------------------------------------------------------------------
// MustMake
// -----------------------------------------------------------------------------

// TestMustMake_Present verifies MustMake constructs the variant.
func TestMustMake_Present(t *testing.T) {
	t.Parallel()

	r := New[shape]().Provide("square", func() shape { return square{} })
	assert.Equal(t, 4, r.MustMake("square").sides())
}

// TestMustMake_Missing verifies MustMake panics with a helpful message.
func TestMustMake_Missing(t *testing.T) {
	t.Parallel()

	r := New[shape]()

	require.PanicsWithError(t, `factory: no constructor for tag "missing"`, func() {
		_ = r.MustMake("missing")
	})
}
