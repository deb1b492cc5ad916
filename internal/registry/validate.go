package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/kunal-10-cloud/CircuitVerse/internal/ctxlog"
)

// Validate performs a strict integrity check over the registered definitions
// before any document is loaded: every definition must be constructible, every
// declared property must carry a usable type and setter, and every
// rectification must land on a registered tag. A mismatch here is a packaging
// bug, caught at startup rather than mid-load.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, tag := range r.order {
		def := r.defs[tag]
		if def.Construct == nil {
			errs = append(errs, fmt.Sprintf("element %q: no constructor registered", tag))
		}
		for name, spec := range def.Properties {
			if spec.Set == nil {
				errs = append(errs, fmt.Sprintf("element %q: property %q has no setter", tag, name))
				continue
			}
			if spec.Type == cty.NilType {
				errs = append(errs, fmt.Sprintf("element %q: property %q has no declared type", tag, name))
				continue
			}
			if spec.Type.Equals(cty.DynamicPseudoType) {
				logger.Warn("Element property declared with dynamic type, which disables document value checking.",
					"element", tag, "property", name)
			}
		}
	}

	for legacy, current := range rectifications {
		if _, ok := r.defs[current]; !ok {
			errs = append(errs, fmt.Sprintf("rectification %q -> %q targets an unregistered tag", legacy, current))
		}
		if _, ok := r.defs[legacy]; ok {
			errs = append(errs, fmt.Sprintf("retired tag %q is also registered directly", legacy))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
