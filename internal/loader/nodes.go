package loader

import (
	"context"
	"fmt"

	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/ctxlog"
	"github.com/kunal-10-cloud/CircuitVerse/internal/document"
)

// nodeTable is the node registry for one scope reconstruction: it resolves
// serialized node records to live node objects by array index, preserving
// identity so every later reference to the same index lands on the same
// object.
type nodeTable struct {
	scope *circuit.Scope
	nodes []*circuit.Node
}

// buildNodes creates one live node per record, in array order.
func buildNodes(scope *circuit.Scope, recs []*document.NodeRec) *nodeTable {
	t := &nodeTable{scope: scope, nodes: make([]*circuit.Node, 0, len(recs))}
	for _, rec := range recs {
		n := scope.NewNode(rec.X, rec.Y, circuit.NodeKind(rec.Type), nil)
		n.Label = rec.Label
		n.BitWidth = rec.BitWidth
		if n.BitWidth == 0 {
			n.BitWidth = 1
		}
		t.nodes = append(t.nodes, n)
	}
	return t
}

// wireConnections restores the serialized adjacency. Connect is idempotent,
// so the symmetric entries both sides of a pair carry never duplicate wires.
func (t *nodeTable) wireConnections(recs []*document.NodeRec) error {
	for i, rec := range recs {
		for _, peer := range rec.Connections {
			if peer < 0 || peer >= len(t.nodes) {
				return fmt.Errorf("node %d references connection index %d outside 0..%d", i, peer, len(t.nodes)-1)
			}
			t.scope.Connect(t.nodes[i], t.nodes[peer])
		}
	}
	return nil
}

// at resolves a document node index to its live node.
func (t *nodeTable) at(idx int) (*circuit.Node, error) {
	if idx < 0 || idx >= len(t.nodes) {
		return nil, fmt.Errorf("node index %d outside 0..%d", idx, len(t.nodes)-1)
	}
	return t.nodes[idx], nil
}

// adopt swaps a freshly constructed element port for the registered node the
// document references: the old node takes over the fresh node's parent and
// the fresh node is deleted. The sentinel index -1 keeps the fresh node. This
// is what re-establishes shared-wire topology across elements serialized
// independently.
func (t *nodeTable) adopt(fresh *circuit.Node, idx int) (*circuit.Node, error) {
	if idx < 0 {
		return fresh, nil
	}
	resolved, err := t.at(idx)
	if err != nil {
		return nil, err
	}
	if fresh != nil && fresh != resolved {
		resolved.Parent = fresh.Parent
		resolved.Kind = fresh.Kind
		fresh.Delete()
	}
	return resolved, nil
}

// purgeUnclaimedPorts is the best-effort cleanup for historically malformed
// documents: any node whose kind claims it is an element port but whose
// parent is still the scope's root placeholder was never claimed by a real
// element and is deleted. Deletions can shift indexes and cascade, so the
// scan restarts from the beginning after every removal until a full pass
// deletes nothing.
func purgeUnclaimedPorts(ctx context.Context, scope *circuit.Scope) int {
	logger := ctxlog.FromContext(ctx)
	removed := 0
	for i := 0; i < len(scope.AllNodes); i++ {
		n := scope.AllNodes[i]
		if n.Kind == circuit.NodeIntermediate {
			continue
		}
		if n.Parent == nil || n.Parent.Tag() != circuit.RootTag {
			continue
		}
		n.Delete()
		removed++
		i = -1
	}
	if removed > 0 {
		logger.Warn("Removed unclaimed port nodes left by a malformed save.", "count", removed)
	}
	return removed
}
