package loader

import (
	"context"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/ctxlog"
	"github.com/kunal-10-cloud/CircuitVerse/internal/document"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// loadElement instantiates one element record into the scope: rectified type
// lookup, construction, label/delay restoration with their
// backward-compatibility rules, the type's own direction fixing, the
// allow-listed property overlay, and finally node identity adoption.
func (l *Loader) loadElement(ctx context.Context, scope *circuit.Scope, table *nodeTable, rec *document.Element) (element.Element, error) {
	logger := ctxlog.FromContext(ctx)

	def, err := l.Registry.Lookup(rec.ObjectType)
	if err != nil {
		return nil, err
	}

	bc := registry.BuildContext{X: rec.X, Y: rec.Y, Scope: scope, Params: constructorParams(rec)}
	if def.Nested {
		childID := string(rec.ID)
		if childID == "" {
			return nil, fmt.Errorf("%s record carries no referenced scope id", def.Tag)
		}
		child := l.Session.ScopeByID(childID)
		if child == nil {
			return nil, fmt.Errorf("%w: %s references scope %q", ErrScopeNotLoaded, def.Tag, childID)
		}
		bc.Child = child
	}

	el, err := def.Construct(bc)
	if err != nil {
		return nil, fmt.Errorf("failed to construct %q: %w", def.Tag, err)
	}
	base := el.Base()

	base.Label = rec.Label
	// A legacy orientation token may have reached the element through its
	// constructor parameters; normalize before deriving anything from it.
	if d, ok := element.NormalizeDirection(string(base.Direction)); ok {
		base.Direction = d
	} else {
		base.Direction = element.Right
	}
	if rec.LabelDirection != "" {
		d, ok := element.NormalizeDirection(rec.LabelDirection)
		if !ok {
			logger.Warn("Unknown label direction token, deriving from element orientation.",
				"element", def.Tag, "token", rec.LabelDirection)
			d = base.Direction.Opposite()
		}
		base.LabelDirection = d
	} else {
		base.LabelDirection = base.Direction.Opposite()
	}

	// An explicit zero is a real value; only absence falls back to the
	// type's built-in default.
	if rec.PropagationDelay != nil {
		base.PropagationDelay = *rec.PropagationDelay
	} else {
		base.PropagationDelay = def.DefaultDelay
	}

	el.FixDirection()

	if err := l.overlayValues(ctx, def, el, rec); err != nil {
		return nil, err
	}
	if err := l.adoptNodes(ctx, def, el, table, rec); err != nil {
		return nil, err
	}

	if len(rec.SubcircuitMetadata) > 0 {
		base.SubcircuitMetadata = rec.SubcircuitMetadata
	}

	scope.AddElement(el)
	return el, nil
}

// overlayValues applies the record's property overrides through the type's
// declared allow-list. Properties the type never declared are skipped, since
// a document cannot inject arbitrary fields, and a declared property whose
// value does not convert to the declared type marks the document corrupt.
func (l *Loader) overlayValues(ctx context.Context, def *registry.Definition, el element.Element, rec *document.Element) error {
	logger := ctxlog.FromContext(ctx)
	for _, name := range sortedKeys(rec.CustomData.Values) {
		spec, ok := def.Properties[name]
		if !ok {
			logger.Warn("Skipping undeclared property from document.", "element", def.Tag, "property", name)
			continue
		}
		val := rec.CustomData.Values[name].Value
		if val == cty.NilVal {
			continue
		}
		converted, err := convert.Convert(val, spec.Type)
		if err != nil {
			return fmt.Errorf("%s property %q: %w", def.Tag, name, err)
		}
		if err := spec.Set(el, converted); err != nil {
			return fmt.Errorf("%s property %q: %w", def.Tag, name, err)
		}
	}
	return nil
}

// adoptNodes replaces freshly constructed nodes with the registered nodes the
// record references: element-wise by index for array-valued fields, the
// single node for scalar ones.
func (l *Loader) adoptNodes(ctx context.Context, def *registry.Definition, el element.Element, table *nodeTable, rec *document.Element) error {
	logger := ctxlog.FromContext(ctx)
	bindings := el.NodeBindings()
	for _, prop := range sortedKeys(rec.CustomData.Nodes) {
		ref := rec.CustomData.Nodes[prop]
		b, ok := bindings[prop]
		if !ok {
			logger.Warn("Document references a connection field the element type does not expose.",
				"element", def.Tag, "property", prop)
			continue
		}
		if ref.IsList {
			for j, idx := range ref.Indexes {
				resolved, err := table.adopt(b.Get(j), idx)
				if err != nil {
					return fmt.Errorf("%s node field %q[%d]: %w", def.Tag, prop, j, err)
				}
				b.Set(j, resolved)
			}
			continue
		}
		resolved, err := table.adopt(b.Get(0), ref.Index)
		if err != nil {
			return fmt.Errorf("%s node field %q: %w", def.Tag, prop, err)
		}
		b.Set(0, resolved)
	}
	return nil
}

func constructorParams(rec *document.Element) []cty.Value {
	if len(rec.CustomData.ConstructorParamaters) == 0 {
		return nil
	}
	params := make([]cty.Value, 0, len(rec.CustomData.ConstructorParamaters))
	for _, p := range rec.CustomData.ConstructorParamaters {
		params = append(params, p.Value)
	}
	return params
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
