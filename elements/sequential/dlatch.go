package sequential

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// Dlatch is the level-triggered storage element. Unlike the flip-flops it has
// no async control pins.
type Dlatch struct {
	base element.Base

	BitWidth int

	DataInp    *circuit.Node
	ClockInp   *circuit.Node
	QOutput    *circuit.Node
	QInvOutput *circuit.Node
}

func newDlatch(bc registry.BuildContext) (element.Element, error) {
	d := &Dlatch{base: element.NewBase(bc.X, bc.Y, bc.Scope), BitWidth: 1}
	params := element.Params(bc.Params)
	d.base.Direction = params.Direction(0, element.Right)
	d.DataInp = d.base.NewPort(d, -20, -10, circuit.NodeInput)
	d.ClockInp = d.base.NewPort(d, -20, 10, circuit.NodeInput)
	d.QOutput = d.base.NewPort(d, 20, -10, circuit.NodeOutput)
	d.QInvOutput = d.base.NewPort(d, 20, 10, circuit.NodeOutput)
	return d, nil
}

func (d *Dlatch) Tag() string         { return "Dlatch" }
func (d *Dlatch) Base() *element.Base { return &d.base }

func (d *Dlatch) NodeBindings() map[string]element.Binding {
	return map[string]element.Binding{
		"dInp":       element.ScalarBinding(&d.DataInp),
		"clockInp":   element.ScalarBinding(&d.ClockInp),
		"qOutput":    element.ScalarBinding(&d.QOutput),
		"qInvOutput": element.ScalarBinding(&d.QInvOutput),
	}
}

func (d *Dlatch) FixDirection() {
	d.base.MovePort(d.DataInp, -20, -10)
	d.base.MovePort(d.ClockInp, -20, 10)
	d.base.MovePort(d.QOutput, 20, -10)
	d.base.MovePort(d.QInvOutput, 20, 10)
}
