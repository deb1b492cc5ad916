package io

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// Constant drives a fixed bit pattern onto its output.
type Constant struct {
	base element.Base

	BitWidth int
	// State is the driven value as a bit string, most significant bit first.
	State string

	Output1 *circuit.Node
}

func newConstant(bc registry.BuildContext) (element.Element, error) {
	c := &Constant{base: element.NewBase(bc.X, bc.Y, bc.Scope), BitWidth: 1, State: "0"}
	params := element.Params(bc.Params)
	c.base.Direction = params.Direction(0, element.Right)
	c.BitWidth = params.Int(1, 1)
	c.State = params.String(2, c.State)
	c.Output1 = c.base.NewPort(c, 10, 0, circuit.NodeOutput)
	c.Output1.BitWidth = c.BitWidth
	return c, nil
}

func (c *Constant) Tag() string         { return "ConstantVal" }
func (c *Constant) Base() *element.Base { return &c.base }

func (c *Constant) NodeBindings() map[string]element.Binding {
	return map[string]element.Binding{
		"output1": element.ScalarBinding(&c.Output1),
	}
}

func (c *Constant) FixDirection() {
	c.base.MovePort(c.Output1, 10, 0)
}

// SetBitWidth resizes the constant and keeps the port in sync.
func (c *Constant) SetBitWidth(w int) {
	if w < 1 {
		w = 1
	}
	c.BitWidth = w
	if c.Output1 != nil {
		c.Output1.BitWidth = w
	}
}
