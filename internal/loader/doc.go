// Package loader rebuilds the live circuit object graph from serialized
// documents.
//
// Reconstruction of one scope runs the following steps strictly in order,
// because each depends on the previous being complete: build all nodes, wire
// node-to-node connections, instantiate elements type by type in the
// registry's deterministic order (subcircuits through the nested-scope path),
// refresh derived wire data, purge historically malformed port nodes, copy
// verbatim metadata, and finally resolve the layout with its
// backward-compatibility defaults.
//
// A project load walks the document's scopes in document order. A subcircuit
// reference can only resolve to a scope constructed earlier in that order;
// forward references are a hard error, not a trigger for on-demand
// resolution.
package loader
