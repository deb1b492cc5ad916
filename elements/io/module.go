// Package io provides the boundary element types of a scope: inputs, outputs,
// and constant sources. Inputs and outputs double as the scope's pins when it
// is embedded as a subcircuit, so they carry layout positions.
package io

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// Module registers the io element definitions.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(&registry.Definition{
		Tag:       element.TagInput,
		Construct: newInput,
		Properties: map[string]registry.PropertySpec{
			"bitWidth": registry.NumberProperty(func(el element.Element, v int) error {
				el.(*Input).SetBitWidth(v)
				return nil
			}),
			"state": registry.NumberProperty(func(el element.Element, v int) error {
				el.(*Input).State = v
				return nil
			}),
		},
	})
	r.Register(&registry.Definition{
		Tag:       element.TagOutput,
		Construct: newOutput,
		Properties: map[string]registry.PropertySpec{
			"bitWidth": registry.NumberProperty(func(el element.Element, v int) error {
				el.(*Output).SetBitWidth(v)
				return nil
			}),
		},
	})
	r.Register(&registry.Definition{
		Tag:       "ConstantVal",
		Construct: newConstant,
		Properties: map[string]registry.PropertySpec{
			"state": registry.StringProperty(func(el element.Element, v string) error {
				el.(*Constant).State = v
				return nil
			}),
			"bitWidth": registry.NumberProperty(func(el element.Element, v int) error {
				el.(*Constant).SetBitWidth(v)
				return nil
			}),
		},
	})
}
