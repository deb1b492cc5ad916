package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
)

func noopConstruct(BuildContext) (element.Element, error) { return nil, nil }

func TestRegisterRejectsDuplicatesAndEmptyTags(t *testing.T) {
	r := New()
	r.Register(&Definition{Tag: "Input", Construct: noopConstruct})

	assert.Panics(t, func() {
		r.Register(&Definition{Tag: "Input", Construct: noopConstruct})
	})
	assert.Panics(t, func() {
		r.Register(&Definition{Tag: ""})
	})
	assert.Panics(t, func() {
		r.Register(nil)
	})
}

func TestTagsPreserveRegistrationOrder(t *testing.T) {
	r := New()
	for _, tag := range []string{"Input", "Output", "AndGate"} {
		r.Register(&Definition{Tag: tag, Construct: noopConstruct})
	}
	assert.Equal(t, []string{"Input", "Output", "AndGate"}, r.Tags())
}

func TestLookupRectifiesRetiredTags(t *testing.T) {
	r := New()
	r.Register(&Definition{Tag: "DflipFlop", Construct: noopConstruct})
	r.Register(&Definition{Tag: "Rom", Construct: noopConstruct})

	def, err := r.Lookup("FlipFlop")
	require.NoError(t, err)
	assert.Equal(t, "DflipFlop", def.Tag)

	def, err = r.Lookup("Ram")
	require.NoError(t, err)
	assert.Equal(t, "Rom", def.Tag)

	// Current tags still resolve directly.
	def, err = r.Lookup("DflipFlop")
	require.NoError(t, err)
	assert.Equal(t, "DflipFlop", def.Tag)
}

func TestLookupUnknownTagFailsLoudly(t *testing.T) {
	r := New()
	_, err := r.Lookup("QuantumGate")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownElementType))
}

func TestHasRectifies(t *testing.T) {
	r := New()
	r.Register(&Definition{Tag: "Rom", Construct: noopConstruct})
	assert.True(t, r.Has("Ram"))
	assert.True(t, r.Has("Rom"))
	assert.False(t, r.Has("Cache"))
}

func TestRectify(t *testing.T) {
	assert.Equal(t, "DflipFlop", Rectify("FlipFlop"))
	assert.Equal(t, "Rom", Rectify("Ram"))
	assert.Equal(t, "Dlatch", Rectify("DLatch"))
	assert.Equal(t, "AndGate", Rectify("AndGate"))
}

func TestValidateCatchesPackagingErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing constructor", func(t *testing.T) {
		r := New()
		r.Register(&Definition{Tag: "Broken"})
		registerRectificationTargets(r)
		err := r.Validate(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no constructor")
	})

	t.Run("property without setter", func(t *testing.T) {
		r := New()
		r.Register(&Definition{
			Tag:       "Input",
			Construct: noopConstruct,
			Properties: map[string]PropertySpec{
				"bitWidth": {Type: cty.Number},
			},
		})
		registerRectificationTargets(r)
		err := r.Validate(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no setter")
	})

	t.Run("rectification target missing", func(t *testing.T) {
		r := New()
		r.Register(&Definition{Tag: "Input", Construct: noopConstruct})
		err := r.Validate(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unregistered tag")
	})

	t.Run("retired tag registered directly", func(t *testing.T) {
		r := New()
		r.Register(&Definition{Tag: "FlipFlop", Construct: noopConstruct})
		registerRectificationTargets(r)
		err := r.Validate(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "also registered directly")
	})

	t.Run("well formed registry passes", func(t *testing.T) {
		r := New()
		registerRectificationTargets(r)
		require.NoError(t, r.Validate(ctx))
	})
}

// registerRectificationTargets satisfies the rectification-table check so
// tests can focus on one failure at a time.
func registerRectificationTargets(r *Registry) {
	for _, tag := range []string{"DflipFlop", "Rom", "Dlatch"} {
		if !r.Has(tag) {
			r.Register(&Definition{Tag: tag, Construct: noopConstruct})
		}
	}
}
