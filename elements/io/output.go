package io

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// Output is a scope-boundary signal sink and the matching pin when the scope
// is embedded as a subcircuit.
type Output struct {
	base element.Base

	BitWidth int
	Layout   element.PortLayout

	Inp1 *circuit.Node
}

func newOutput(bc registry.BuildContext) (element.Element, error) {
	out := &Output{base: element.NewBase(bc.X, bc.Y, bc.Scope), BitWidth: 1}
	params := element.Params(bc.Params)
	out.base.Direction = params.Direction(0, element.Left)
	out.BitWidth = params.Int(1, 1)
	out.Inp1 = out.base.NewPort(out, 10, 0, circuit.NodeInput)
	out.Inp1.BitWidth = out.BitWidth
	return out, nil
}

func (out *Output) Tag() string         { return element.TagOutput }
func (out *Output) Base() *element.Base { return &out.base }

func (out *Output) NodeBindings() map[string]element.Binding {
	return map[string]element.Binding{
		"inp1": element.ScalarBinding(&out.Inp1),
	}
}

func (out *Output) FixDirection() {
	out.base.MovePort(out.Inp1, 10, 0)
}

// SetBitWidth resizes the signal and keeps the port in sync.
func (out *Output) SetBitWidth(w int) {
	if w < 1 {
		w = 1
	}
	out.BitWidth = w
	if out.Inp1 != nil {
		out.Inp1.BitWidth = w
	}
}

// SetPortLayout implements element.LayoutPort.
func (out *Output) SetPortLayout(p element.PortLayout) {
	out.Layout = p
}
