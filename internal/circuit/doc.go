// Package circuit holds the live, in-memory model of one editable circuit: the
// scope itself, its connection nodes, its wires, and its layout record.
//
// # Why a separate package?
//
// The serialized document model (internal/document) and the live object graph
// have very different lifecycles. Document records are transient: they are
// decoded, consumed by the loader, and discarded. The types in this package are
// the long-lived, cross-referenced objects the editor and the simulation layer
// operate on after a load completes. Keeping them apart means the loader is the
// only place where the two worlds meet.
//
// # Ownership
//
// A Scope exclusively owns its nodes, wires, and element collections. Nothing
// mutates them concurrently: reconstruction of one scope runs to completion on
// a single goroutine, and UI mutations happen between operations, never during
// one.
package circuit
