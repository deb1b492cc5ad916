package circuit

// NodeKind distinguishes element-owned ports from free intermediate points.
type NodeKind int

const (
	// NodeInput marks a node acting as an input port of its parent element.
	NodeInput NodeKind = 0
	// NodeOutput marks a node acting as an output port of its parent element.
	NodeOutput NodeKind = 1
	// NodeIntermediate marks a free connection point not owned by a concrete
	// element. The numeric value 2 is part of the document contract.
	NodeIntermediate NodeKind = 2
)

// Component is the minimal view the connection graph needs of a node's owner.
// Concrete circuit elements implement it, and so does the scope's root
// placeholder.
type Component interface {
	// Tag returns the component's registered type tag.
	Tag() string
}

// Node is a single connection point between elements and wires.
type Node struct {
	X, Y     int
	Kind     NodeKind
	BitWidth int
	Label    string

	// Parent is the component that owns this node. Freshly deserialized nodes
	// are parented to the scope root until an element claims them.
	Parent Component

	// Connections holds every node this one is directly wired to.
	Connections []*Node

	scope *Scope
}

// Scope returns the scope that owns this node.
func (n *Node) Scope() *Scope {
	return n.scope
}

// ConnectedTo reports whether n is directly wired to other.
func (n *Node) ConnectedTo(other *Node) bool {
	for _, c := range n.Connections {
		if c == other {
			return true
		}
	}
	return false
}

func (n *Node) attach(other *Node) {
	if n == other || n.ConnectedTo(other) {
		return
	}
	n.Connections = append(n.Connections, other)
}

func (n *Node) detach(other *Node) {
	for i, c := range n.Connections {
		if c == other {
			n.Connections = append(n.Connections[:i], n.Connections[i+1:]...)
			return
		}
	}
}

// Delete removes the node from its scope: every peer connection is detached,
// wires touching the node are dropped, and the node leaves the scope's node
// list. Deleting an already-deleted node is a no-op.
func (n *Node) Delete() {
	if n.scope == nil {
		return
	}
	for _, peer := range n.Connections {
		peer.detach(n)
	}
	n.Connections = nil
	n.scope.removeNode(n)
	n.scope.removeWiresOf(n)
	n.scope = nil
}
