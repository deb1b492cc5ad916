package element

import "github.com/kunal-10-cloud/CircuitVerse/internal/circuit"

// Binding exposes one connection-bearing field of an element so the loader
// can swap freshly constructed nodes for the registered ones a document
// references. Array-valued fields replace element-wise by index; scalar fields
// replace the single node at index 0.
type Binding interface {
	Scalar() bool
	Len() int
	Get(i int) *circuit.Node
	Set(i int, n *circuit.Node)
}

type scalarBinding struct {
	slot **circuit.Node
}

// ScalarBinding adapts a single-node field.
func ScalarBinding(slot **circuit.Node) Binding { return scalarBinding{slot: slot} }

func (b scalarBinding) Scalar() bool { return true }
func (b scalarBinding) Len() int     { return 1 }

func (b scalarBinding) Get(i int) *circuit.Node {
	if i != 0 {
		return nil
	}
	return *b.slot
}

func (b scalarBinding) Set(i int, n *circuit.Node) {
	if i == 0 {
		*b.slot = n
	}
}

type sliceBinding struct {
	slot *[]*circuit.Node
}

// SliceBinding adapts an array-valued node field. Set grows the slice on
// demand so documents saved with a larger input size than the constructed
// default still restore cleanly.
func SliceBinding(slot *[]*circuit.Node) Binding { return sliceBinding{slot: slot} }

func (b sliceBinding) Scalar() bool { return false }
func (b sliceBinding) Len() int     { return len(*b.slot) }

func (b sliceBinding) Get(i int) *circuit.Node {
	if i < 0 || i >= len(*b.slot) {
		return nil
	}
	return (*b.slot)[i]
}

func (b sliceBinding) Set(i int, n *circuit.Node) {
	if i < 0 {
		return
	}
	for len(*b.slot) <= i {
		*b.slot = append(*b.slot, nil)
	}
	(*b.slot)[i] = n
}
