package circuit

// WireOrientation is the derived routing direction of a wire segment.
type WireOrientation string

const (
	WireHorizontal WireOrientation = "horizontal"
	WireVertical   WireOrientation = "vertical"
)

// Wire is a routed segment between two connected nodes. Its orientation is
// derived data: it is recomputed from the endpoint coordinates once both
// endpoints exist, never trusted from a document.
type Wire struct {
	A, B        *Node
	Orientation WireOrientation
}

// Refresh recomputes the wire's derived routing data from its endpoints.
// Endpoints sharing a y coordinate make a horizontal segment; everything else
// is treated as vertical.
func (w *Wire) Refresh() {
	if w.A == nil || w.B == nil {
		return
	}
	if w.A.Y == w.B.Y {
		w.Orientation = WireHorizontal
	} else {
		w.Orientation = WireVertical
	}
}

func (w *Wire) touches(n *Node) bool {
	return w.A == n || w.B == n
}
