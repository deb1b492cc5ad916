package io

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// Input is a scope-boundary signal source. When the scope is embedded as a
// subcircuit, the input becomes a pin at Layout's position.
type Input struct {
	base element.Base

	BitWidth int
	State    int
	Layout   element.PortLayout

	Output1 *circuit.Node
}

func newInput(bc registry.BuildContext) (element.Element, error) {
	in := &Input{base: element.NewBase(bc.X, bc.Y, bc.Scope), BitWidth: 1}
	params := element.Params(bc.Params)
	in.base.Direction = params.Direction(0, element.Right)
	in.BitWidth = params.Int(1, 1)
	in.Output1 = in.base.NewPort(in, 10, 0, circuit.NodeOutput)
	in.Output1.BitWidth = in.BitWidth
	return in, nil
}

func (in *Input) Tag() string         { return element.TagInput }
func (in *Input) Base() *element.Base { return &in.base }

func (in *Input) NodeBindings() map[string]element.Binding {
	return map[string]element.Binding{
		"output1": element.ScalarBinding(&in.Output1),
	}
}

func (in *Input) FixDirection() {
	in.base.MovePort(in.Output1, 10, 0)
}

// SetBitWidth resizes the signal and keeps the port in sync.
func (in *Input) SetBitWidth(w int) {
	if w < 1 {
		w = 1
	}
	in.BitWidth = w
	if in.Output1 != nil {
		in.Output1.BitWidth = w
	}
}

// SetPortLayout implements element.LayoutPort.
func (in *Input) SetPortLayout(p element.PortLayout) {
	in.Layout = p
}
