package gates

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// gateDefaultDelay matches the historical built-in propagation delay of
// combinational gates.
const gateDefaultDelay = 10

// Module registers the combinational gate definitions.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	for _, tag := range []string{"AndGate", "OrGate", "NandGate", "NorGate", "XorGate", "XnorGate"} {
		r.Register(&registry.Definition{
			Tag:          tag,
			DefaultDelay: gateDefaultDelay,
			Construct:    newGate(tag),
			Properties: map[string]registry.PropertySpec{
				"bitWidth": registry.NumberProperty(func(el element.Element, v int) error {
					el.(*Gate).SetBitWidth(v)
					return nil
				}),
				"inputSize": registry.NumberProperty(func(el element.Element, v int) error {
					el.(*Gate).SetInputSize(v)
					return nil
				}),
			},
		})
	}

	r.Register(&registry.Definition{
		Tag:          "NotGate",
		DefaultDelay: gateDefaultDelay,
		Construct:    newNotGate,
		Properties: map[string]registry.PropertySpec{
			"bitWidth": registry.NumberProperty(func(el element.Element, v int) error {
				el.(*NotGate).SetBitWidth(v)
				return nil
			}),
		},
	})
}
