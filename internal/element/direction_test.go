package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDirectionAcceptsLegacyTokens(t *testing.T) {
	cases := map[string]Direction{
		"RIGHT": Right,
		"DOWN":  Down,
		"LEFT":  Left,
		"UP":    Up,
		"right": Right,
		"down":  Down,
		"left":  Left,
		"up":    Up,
		"0":     Right,
		"1":     Down,
		"2":     Left,
		"3":     Up,
	}
	for token, want := range cases {
		got, ok := NormalizeDirection(token)
		assert.True(t, ok, "token %q", token)
		assert.Equal(t, want, got, "token %q", token)
	}

	_, ok := NormalizeDirection("NORTH")
	assert.False(t, ok)
	_, ok = NormalizeDirection("")
	assert.False(t, ok)
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Down, Up.Opposite())
	assert.Equal(t, Up, Down.Opposite())
}

func TestOrientRotatesOffsets(t *testing.T) {
	// An offset of (10, -5) in RIGHT-facing coordinates.
	cases := map[Direction][2]int{
		Right: {10, -5},
		Down:  {5, 10},
		Left:  {-10, 5},
		Up:    {-5, -10},
	}
	for d, want := range cases {
		x, y := Orient(10, -5, d)
		assert.Equal(t, want[0], x, "direction %s x", d)
		assert.Equal(t, want[1], y, "direction %s y", d)
	}
}
