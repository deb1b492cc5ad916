package registry

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
)

// The helpers below build PropertySpecs for the common scalar property
// shapes so element packages declare allow-lists without repeating the
// cty-to-Go plumbing.

// NumberProperty declares an integer-valued property.
func NumberProperty(set func(el element.Element, v int) error) PropertySpec {
	return PropertySpec{
		Type: cty.Number,
		Set: func(el element.Element, v cty.Value) error {
			var n int
			if err := gocty.FromCtyValue(v, &n); err != nil {
				return fmt.Errorf("not a whole number: %w", err)
			}
			return set(el, n)
		},
	}
}

// StringProperty declares a string-valued property.
func StringProperty(set func(el element.Element, v string) error) PropertySpec {
	return PropertySpec{
		Type: cty.String,
		Set: func(el element.Element, v cty.Value) error {
			var s string
			if err := gocty.FromCtyValue(v, &s); err != nil {
				return fmt.Errorf("not a string: %w", err)
			}
			return set(el, s)
		},
	}
}

// BoolProperty declares a boolean-valued property.
func BoolProperty(set func(el element.Element, v bool) error) PropertySpec {
	return PropertySpec{
		Type: cty.Bool,
		Set: func(el element.Element, v cty.Value) error {
			var b bool
			if err := gocty.FromCtyValue(v, &b); err != nil {
				return fmt.Errorf("not a bool: %w", err)
			}
			return set(el, b)
		},
	}
}

// NumberListProperty declares a property holding a list of integers, such as
// memory contents.
func NumberListProperty(set func(el element.Element, v []int) error) PropertySpec {
	return PropertySpec{
		Type: cty.List(cty.Number),
		Set: func(el element.Element, v cty.Value) error {
			var out []int
			for it := v.ElementIterator(); it.Next(); {
				_, ev := it.Element()
				var n int
				if err := gocty.FromCtyValue(ev, &n); err != nil {
					return fmt.Errorf("list entry is not a whole number: %w", err)
				}
				out = append(out, n)
			}
			return set(el, out)
		},
	}
}
