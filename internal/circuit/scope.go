package circuit

import (
	"encoding/json"

	"github.com/kunal-10-cloud/CircuitVerse/internal/document"
	"github.com/kunal-10-cloud/CircuitVerse/internal/folders"
)

// RootTag is the type tag of the scope root placeholder. Historically
// malformed documents contain port nodes still parented to this placeholder;
// the loader purges those after reconstruction.
const RootTag = "CircuitElement"

// rootElement is the placeholder owner for nodes that no concrete element has
// claimed yet.
type rootElement struct{}

func (rootElement) Tag() string { return RootTag }

// Scope is one circuit definition, top-level or subcircuit.
type Scope struct {
	ID   string
	Name string

	// Root is the placeholder owner for unclaimed nodes.
	Root Component

	AllNodes []*Node
	Wires    []*Wire

	Layout Layout

	// VerilogMetadata and TestbenchData are carried verbatim from the
	// document for scopes derived from HDL sources.
	VerilogMetadata *document.VerilogMetadata
	TestbenchData   json.RawMessage

	// RestrictedElementsUsed tracks which app-restricted element types this
	// scope uses, for UI bookkeeping.
	RestrictedElementsUsed []string

	// Folders organizes this scope's subcircuits for browsing. Assigned by
	// the scope factory; all folder mutation goes through it.
	Folders *folders.Store

	// IsVerilogDerived marks scopes generated from a hardware description.
	IsVerilogDerived bool
	// IsMain marks the designated main circuit of a verilog project.
	IsMain bool

	elements map[string][]Component
	tagOrder []string
}

// NewScope creates an empty scope with the given identity.
func NewScope(name, id string) *Scope {
	return &Scope{
		ID:       id,
		Name:     name,
		Root:     rootElement{},
		elements: make(map[string][]Component),
	}
}

// NewNode creates a node owned by this scope and appends it to the scope's
// node list, preserving creation order.
func (s *Scope) NewNode(x, y int, kind NodeKind, parent Component) *Node {
	if parent == nil {
		parent = s.Root
	}
	n := &Node{X: x, Y: y, Kind: kind, Parent: parent, scope: s}
	s.AllNodes = append(s.AllNodes, n)
	return n
}

// Connect wires two nodes together and records the backing wire segment.
// Connecting an already-connected pair is idempotent.
func (s *Scope) Connect(a, b *Node) {
	if a == nil || b == nil || a == b || a.ConnectedTo(b) {
		return
	}
	a.attach(b)
	b.attach(a)
	w := &Wire{A: a, B: b}
	w.Refresh()
	s.Wires = append(s.Wires, w)
}

// AddElement appends an element under its type tag, preserving both document
// order within a tag and first-seen tag order.
func (s *Scope) AddElement(c Component) {
	tag := c.Tag()
	if _, seen := s.elements[tag]; !seen {
		s.tagOrder = append(s.tagOrder, tag)
	}
	s.elements[tag] = append(s.elements[tag], c)
}

// ElementsByTag returns the ordered elements of one type. The returned slice
// is owned by the scope and must not be mutated.
func (s *Scope) ElementsByTag(tag string) []Component {
	return s.elements[tag]
}

// ElementTags returns the tags present in this scope, in first-seen order.
func (s *Scope) ElementTags() []string {
	out := make([]string, len(s.tagOrder))
	copy(out, s.tagOrder)
	return out
}

// ElementCount returns the total number of elements across all types.
func (s *Scope) ElementCount() int {
	total := 0
	for _, list := range s.elements {
		total += len(list)
	}
	return total
}

func (s *Scope) removeNode(n *Node) {
	for i, cand := range s.AllNodes {
		if cand == n {
			s.AllNodes = append(s.AllNodes[:i], s.AllNodes[i+1:]...)
			return
		}
	}
}

func (s *Scope) removeWiresOf(n *Node) {
	kept := s.Wires[:0]
	for _, w := range s.Wires {
		if !w.touches(n) {
			kept = append(kept, w)
		}
	}
	s.Wires = kept
}
