package gates

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// NotGate is the single-input inverter.
type NotGate struct {
	base element.Base

	BitWidth int

	Inp1    *circuit.Node
	Output1 *circuit.Node
}

func newNotGate(bc registry.BuildContext) (element.Element, error) {
	g := &NotGate{base: element.NewBase(bc.X, bc.Y, bc.Scope), BitWidth: 1}
	params := element.Params(bc.Params)
	g.base.Direction = params.Direction(0, element.Right)
	g.BitWidth = params.Int(1, 1)
	g.Inp1 = g.base.NewPort(g, -10, 0, circuit.NodeInput)
	g.Inp1.BitWidth = g.BitWidth
	g.Output1 = g.base.NewPort(g, 10, 0, circuit.NodeOutput)
	g.Output1.BitWidth = g.BitWidth
	return g, nil
}

func (g *NotGate) Tag() string         { return "NotGate" }
func (g *NotGate) Base() *element.Base { return &g.base }

func (g *NotGate) NodeBindings() map[string]element.Binding {
	return map[string]element.Binding{
		"inp1":    element.ScalarBinding(&g.Inp1),
		"output1": element.ScalarBinding(&g.Output1),
	}
}

func (g *NotGate) FixDirection() {
	g.base.MovePort(g.Inp1, -10, 0)
	g.base.MovePort(g.Output1, 10, 0)
}

// SetBitWidth resizes the signal and keeps both ports in sync.
func (g *NotGate) SetBitWidth(w int) {
	if w < 1 {
		w = 1
	}
	g.BitWidth = w
	if g.Inp1 != nil {
		g.Inp1.BitWidth = w
	}
	if g.Output1 != nil {
		g.Output1.BitWidth = w
	}
}
