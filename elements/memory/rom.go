// Package memory provides the read-only memory element type. The retired
// "Ram" tag rectifies to Rom.
package memory

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

const romDefaultDelay = 10

// Rom holds a fixed table of byte-wide words addressed by a 4-bit input.
type Rom struct {
	base element.Base

	Data []int

	MemAddr *circuit.Node
	DataOut *circuit.Node
	En      *circuit.Node
}

func newRom(bc registry.BuildContext) (element.Element, error) {
	rom := &Rom{base: element.NewBase(bc.X, bc.Y, bc.Scope)}
	params := element.Params(bc.Params)
	rom.base.Direction = params.Direction(0, element.Right)
	rom.MemAddr = rom.base.NewPort(rom, -20, 0, circuit.NodeInput)
	rom.MemAddr.BitWidth = 4
	rom.DataOut = rom.base.NewPort(rom, 20, 0, circuit.NodeOutput)
	rom.DataOut.BitWidth = 8
	rom.En = rom.base.NewPort(rom, 0, 20, circuit.NodeInput)
	return rom, nil
}

func (r *Rom) Tag() string         { return "Rom" }
func (r *Rom) Base() *element.Base { return &r.base }

func (r *Rom) NodeBindings() map[string]element.Binding {
	return map[string]element.Binding{
		"memAddr": element.ScalarBinding(&r.MemAddr),
		"dataOut": element.ScalarBinding(&r.DataOut),
		"en":      element.ScalarBinding(&r.En),
	}
}

func (r *Rom) FixDirection() {
	r.base.MovePort(r.MemAddr, -20, 0)
	r.base.MovePort(r.DataOut, 20, 0)
	r.base.MovePort(r.En, 0, 20)
}

// Module registers the memory element definitions.
type Module struct{}

func (Module) Register(reg *registry.Registry) {
	reg.Register(&registry.Definition{
		Tag:          "Rom",
		DefaultDelay: romDefaultDelay,
		Construct:    newRom,
		Properties: map[string]registry.PropertySpec{
			"data": registry.NumberListProperty(func(el element.Element, v []int) error {
				el.(*Rom).Data = v
				return nil
			}),
		},
	})
}
