// Package gates provides the combinational gate element types. All
// multi-input gates share one implementation parameterized by tag; only the
// simulation layer outside this core cares which boolean function a tag
// denotes.
package gates

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// Gate is a multi-input combinational gate.
type Gate struct {
	base element.Base
	tag  string

	BitWidth int

	Inputs  []*circuit.Node
	Output1 *circuit.Node
}

// newGate builds a constructor for one gate tag. Constructor parameters are
// [direction, inputSize, bitWidth], all optional.
func newGate(tag string) func(registry.BuildContext) (element.Element, error) {
	return func(bc registry.BuildContext) (element.Element, error) {
		g := &Gate{base: element.NewBase(bc.X, bc.Y, bc.Scope), tag: tag, BitWidth: 1}
		params := element.Params(bc.Params)
		g.base.Direction = params.Direction(0, element.Right)
		inputSize := params.Int(1, 2)
		if inputSize < 2 {
			inputSize = 2
		}
		g.BitWidth = params.Int(2, 1)
		for i := 0; i < inputSize; i++ {
			g.Inputs = append(g.Inputs, g.newInputPort(i, inputSize))
		}
		g.Output1 = g.base.NewPort(g, 20, 0, circuit.NodeOutput)
		g.Output1.BitWidth = g.BitWidth
		return g, nil
	}
}

func (g *Gate) newInputPort(i, count int) *circuit.Node {
	n := g.base.NewPort(g, -10, inputOffset(i, count), circuit.NodeInput)
	n.BitWidth = g.BitWidth
	return n
}

// inputOffset spreads count input pins vertically around the gate body.
func inputOffset(i, count int) int {
	return i*10 - (count-1)*5
}

func (g *Gate) Tag() string         { return g.tag }
func (g *Gate) Base() *element.Base { return &g.base }

func (g *Gate) NodeBindings() map[string]element.Binding {
	return map[string]element.Binding{
		"inp":     element.SliceBinding(&g.Inputs),
		"output1": element.ScalarBinding(&g.Output1),
	}
}

func (g *Gate) FixDirection() {
	for i, n := range g.Inputs {
		g.base.MovePort(n, -10, inputOffset(i, len(g.Inputs)))
	}
	g.base.MovePort(g.Output1, 20, 0)
}

// SetInputSize grows or shrinks the input pin list, deleting the nodes of
// removed pins.
func (g *Gate) SetInputSize(size int) {
	if size < 2 {
		size = 2
	}
	for len(g.Inputs) > size {
		last := g.Inputs[len(g.Inputs)-1]
		g.Inputs = g.Inputs[:len(g.Inputs)-1]
		if last != nil {
			last.Delete()
		}
	}
	for len(g.Inputs) < size {
		g.Inputs = append(g.Inputs, g.newInputPort(len(g.Inputs), size))
	}
	g.FixDirection()
}

// SetBitWidth resizes the gate's signal width and keeps all ports in sync.
func (g *Gate) SetBitWidth(w int) {
	if w < 1 {
		w = 1
	}
	g.BitWidth = w
	for _, n := range g.Inputs {
		if n != nil {
			n.BitWidth = w
		}
	}
	if g.Output1 != nil {
		g.Output1.BitWidth = w
	}
}
