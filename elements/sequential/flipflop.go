// Package sequential provides the clocked storage element types.
package sequential

import (
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// flipFlop carries the port set shared by the edge-triggered flip-flop
// variants: one data input, clock, complementary outputs, and the async
// control pins.
type flipFlop struct {
	base element.Base
	tag  string

	BitWidth int

	DataInp    *circuit.Node
	ClockInp   *circuit.Node
	QOutput    *circuit.Node
	QInvOutput *circuit.Node
	Reset      *circuit.Node
	Preset     *circuit.Node
	En         *circuit.Node
}

// dataBinding is the document property name of the data pin: "dInp" for the
// D variant, "tInp" for the T variant.
func newFlipFlop(tag, dataBinding string) func(registry.BuildContext) (element.Element, error) {
	return func(bc registry.BuildContext) (element.Element, error) {
		ff := &flipFlopElement{
			flipFlop:    flipFlop{base: element.NewBase(bc.X, bc.Y, bc.Scope), tag: tag, BitWidth: 1},
			dataBinding: dataBinding,
		}
		params := element.Params(bc.Params)
		ff.base.Direction = params.Direction(0, element.Right)
		ff.DataInp = ff.base.NewPort(ff, -20, -10, circuit.NodeInput)
		ff.ClockInp = ff.base.NewPort(ff, -20, 10, circuit.NodeInput)
		ff.QOutput = ff.base.NewPort(ff, 20, -10, circuit.NodeOutput)
		ff.QInvOutput = ff.base.NewPort(ff, 20, 10, circuit.NodeOutput)
		ff.Reset = ff.base.NewPort(ff, 0, 20, circuit.NodeInput)
		ff.Preset = ff.base.NewPort(ff, 0, -20, circuit.NodeInput)
		ff.En = ff.base.NewPort(ff, -10, 20, circuit.NodeInput)
		return ff, nil
	}
}

type flipFlopElement struct {
	flipFlop
	dataBinding string
}

func (ff *flipFlopElement) Tag() string         { return ff.tag }
func (ff *flipFlopElement) Base() *element.Base { return &ff.base }

func (ff *flipFlopElement) NodeBindings() map[string]element.Binding {
	return map[string]element.Binding{
		ff.dataBinding: element.ScalarBinding(&ff.DataInp),
		"clockInp":     element.ScalarBinding(&ff.ClockInp),
		"qOutput":      element.ScalarBinding(&ff.QOutput),
		"qInvOutput":   element.ScalarBinding(&ff.QInvOutput),
		"reset":        element.ScalarBinding(&ff.Reset),
		"preset":       element.ScalarBinding(&ff.Preset),
		"en":           element.ScalarBinding(&ff.En),
	}
}

func (ff *flipFlopElement) FixDirection() {
	ff.base.MovePort(ff.DataInp, -20, -10)
	ff.base.MovePort(ff.ClockInp, -20, 10)
	ff.base.MovePort(ff.QOutput, 20, -10)
	ff.base.MovePort(ff.QInvOutput, 20, 10)
	ff.base.MovePort(ff.Reset, 0, 20)
	ff.base.MovePort(ff.Preset, 0, -20)
	ff.base.MovePort(ff.En, -10, 20)
}
