// Package element defines the contract every concrete circuit-element type
// implements, plus the shared state they all carry. Concrete types live in the
// top-level elements/ packages and register themselves with the type registry.
package element

import (
	"encoding/json"

	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
)

// Well-known type tags the loader treats specially.
const (
	TagInput      = "Input"
	TagOutput     = "Output"
	TagSubCircuit = "SubCircuit"
)

// Element is one live circuit component.
type Element interface {
	circuit.Component

	// Base returns the shared mutable state of the element.
	Base() *Base

	// NodeBindings exposes the element's connection-bearing fields by their
	// document property name.
	NodeBindings() map[string]Binding

	// FixDirection applies the element type's own layout normalization once
	// geometry and direction are settled.
	FixDirection()
}

// Base is the state common to every element. Concrete types hold it by value
// and hand out a pointer through Element.Base.
type Base struct {
	X, Y  int
	Scope *circuit.Scope

	Direction      Direction
	Label          string
	LabelDirection Direction

	PropagationDelay int

	// SubcircuitMetadata is carried verbatim from the document when present.
	SubcircuitMetadata json.RawMessage
}

// NewBase returns a Base at the given position facing the default direction.
func NewBase(x, y int, scope *circuit.Scope) Base {
	return Base{X: x, Y: y, Scope: scope, Direction: Right}
}

// NewPort creates a port node owned by the given element, offset from the
// element position in RIGHT-facing coordinates.
func (b *Base) NewPort(owner circuit.Component, dx, dy int, kind circuit.NodeKind) *circuit.Node {
	ox, oy := Orient(dx, dy, b.Direction)
	return b.Scope.NewNode(b.X+ox, b.Y+oy, kind, owner)
}

// MovePort repositions an existing port to the oriented offset. Used by
// FixDirection implementations after the direction changes.
func (b *Base) MovePort(n *circuit.Node, dx, dy int) {
	if n == nil {
		return
	}
	ox, oy := Orient(dx, dy, b.Direction)
	n.X, n.Y = b.X+ox, b.Y+oy
}

// PortLayout is the embedded-view position of an Input or Output pin on its
// scope's layout.
type PortLayout struct {
	X  int
	Y  int
	ID string
}

// LayoutPort is implemented by elements that expose a pin on the subcircuit
// layout (Input and Output). The loader assigns synthesized positions to them
// for documents that never stored a layout.
type LayoutPort interface {
	SetPortLayout(PortLayout)
}
