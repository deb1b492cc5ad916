package sequential

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

const flipFlopDefaultDelay = 10

// Module registers the sequential element definitions. The retired
// "FlipFlop" tag rectifies to DflipFlop; see the registry's rectification
// table.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(&registry.Definition{
		Tag:          "DflipFlop",
		DefaultDelay: flipFlopDefaultDelay,
		Construct:    newFlipFlop("DflipFlop", "dInp"),
	})
	r.Register(&registry.Definition{
		Tag:          "TflipFlop",
		DefaultDelay: flipFlopDefaultDelay,
		Construct:    newFlipFlop("TflipFlop", "tInp"),
	})
	r.Register(&registry.Definition{
		Tag:          "Dlatch",
		DefaultDelay: flipFlopDefaultDelay,
		Construct:    newDlatch,
	})
}
