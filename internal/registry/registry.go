// Package registry maps circuit-element type tags to constructible
// definitions. The tag space is closed: every tag a document may reference,
// current or retired, must resolve here or reconstruction fails loudly.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/zclconf/go-cty/cty"

	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
)

// Module is the interface element packages implement to register their
// definitions with a registry instance.
type Module interface {
	Register(r *Registry)
}

// BuildContext carries everything a definition needs to construct an element.
type BuildContext struct {
	X, Y  int
	Scope *circuit.Scope

	// Params are the document's optional constructor parameters.
	Params []cty.Value

	// Child is the resolved nested scope, set only for subcircuit records.
	Child *circuit.Scope
}

// PropertySpec declares one overridable property of an element type: the cty
// type document values must convert to, and the setter that applies them.
// Together the specs form the allow-list for the customData.values overlay:
// a document cannot inject properties the type never declared.
type PropertySpec struct {
	Type cty.Type
	Set  func(el element.Element, v cty.Value) error
}

// Definition is everything the loader knows about one element type.
type Definition struct {
	Tag          string
	DefaultDelay int

	// Construct builds the element and its fresh port nodes.
	Construct func(bc BuildContext) (element.Element, error)

	// Nested marks types instantiated through the nested-scope loader, which
	// resolves BuildContext.Child before calling Construct.
	Nested bool

	Properties map[string]PropertySpec
}

// Registry holds the registered element definitions for a single application
// instance, preserving registration order as the deterministic type-list
// order used during scope reconstruction.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a definition. Registering the same tag twice is a programmer
// error and panics.
func (r *Registry) Register(def *Definition) {
	if def == nil || def.Tag == "" {
		panic("registry: definition must have a tag")
	}
	if _, exists := r.defs[def.Tag]; exists {
		panic(fmt.Sprintf("registry: element definition %q already registered", def.Tag))
	}
	slog.Debug("Registering element definition.", "tag", def.Tag)
	r.defs[def.Tag] = def
	r.order = append(r.order, def.Tag)
}

// Tags returns every registered tag in registration order.
func (r *Registry) Tags() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup resolves a document type tag, rectifying retired names first. An
// unresolvable tag is a corrupt-document error, not a recoverable skip.
func (r *Registry) Lookup(tag string) (*Definition, error) {
	current := Rectify(tag)
	def, ok := r.defs[current]
	if !ok {
		if current != tag {
			return nil, fmt.Errorf("%w: %q (rectified to %q)", ErrUnknownElementType, tag, current)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownElementType, tag)
	}
	return def, nil
}

// Has reports whether a tag (after rectification) is registered.
func (r *Registry) Has(tag string) bool {
	_, ok := r.defs[Rectify(tag)]
	return ok
}
