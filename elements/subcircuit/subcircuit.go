// Package subcircuit provides the element type that embeds one scope inside
// another. Unlike every other element it cannot be built from its record
// alone: the loader resolves the referenced child scope first (it must have
// been constructed earlier in the document order) and hands it to the
// constructor.
package subcircuit

import (
	"fmt"

	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// SubCircuit embeds a child scope as a single element. It exposes one pin per
// Input/Output element of the child.
type SubCircuit struct {
	base element.Base

	ScopeID string
	Child   *circuit.Scope

	InputNodes  []*circuit.Node
	OutputNodes []*circuit.Node
}

func newSubCircuit(bc registry.BuildContext) (element.Element, error) {
	if bc.Child == nil {
		return nil, fmt.Errorf("subcircuit must be constructed through the nested-scope loader")
	}
	sc := &SubCircuit{
		base:    element.NewBase(bc.X, bc.Y, bc.Scope),
		ScopeID: bc.Child.ID,
		Child:   bc.Child,
	}
	inputs := len(bc.Child.ElementsByTag(element.TagInput))
	outputs := len(bc.Child.ElementsByTag(element.TagOutput))
	for i := 0; i < inputs; i++ {
		n := sc.base.NewPort(sc, 0, pinOffset(i), circuit.NodeInput)
		sc.InputNodes = append(sc.InputNodes, n)
	}
	w := sc.Child.Layout.Width
	if w == 0 {
		w = circuit.SynthesizeLayout(inputs, outputs).Width
	}
	for i := 0; i < outputs; i++ {
		n := sc.base.NewPort(sc, w, pinOffset(i), circuit.NodeOutput)
		sc.OutputNodes = append(sc.OutputNodes, n)
	}
	return sc, nil
}

func pinOffset(i int) int { return i*20 + 20 }

func (sc *SubCircuit) Tag() string         { return element.TagSubCircuit }
func (sc *SubCircuit) Base() *element.Base { return &sc.base }

func (sc *SubCircuit) NodeBindings() map[string]element.Binding {
	return map[string]element.Binding{
		"inputNodes":  element.SliceBinding(&sc.InputNodes),
		"outputNodes": element.SliceBinding(&sc.OutputNodes),
	}
}

// FixDirection is a no-op: an embedded scope's pin geometry follows the child
// layout, not an orientation.
func (sc *SubCircuit) FixDirection() {}

// Module registers the subcircuit definition.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.Register(&registry.Definition{
		Tag:       element.TagSubCircuit,
		Nested:    true,
		Construct: newSubCircuit,
	})
}
