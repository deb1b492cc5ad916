package loader

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/ctxlog"
	"github.com/kunal-10-cloud/CircuitVerse/internal/document"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/folders"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
	"github.com/kunal-10-cloud/CircuitVerse/internal/session"
)

// Loader reconstructs live scopes and whole projects from documents.
type Loader struct {
	Registry *registry.Registry
	Session  *session.Session
}

// New creates a loader bound to a registry and a session.
func New(reg *registry.Registry, sess *session.Session) *Loader {
	return &Loader{Registry: reg, Session: sess}
}

// ReconstructScope turns an empty scope and its serialized document into a
// fully wired scope. The step order is load-bearing; see the package doc.
func (l *Loader) ReconstructScope(ctx context.Context, scope *circuit.Scope, doc *document.Scope) error {
	logger := ctxlog.FromContext(ctx).With("scope", scope.Name, "scope_id", scope.ID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Reconstructing scope.", "nodes", len(doc.AllNodes))

	table := buildNodes(scope, doc.AllNodes)
	if err := table.wireConnections(doc.AllNodes); err != nil {
		return fmt.Errorf("connection wiring failed: %w", err)
	}

	elements, err := l.normalizeElementKeys(doc.Elements)
	if err != nil {
		return err
	}
	for _, tag := range l.Registry.Tags() {
		for i, rec := range elements[tag] {
			if _, err := l.loadElement(ctx, scope, table, rec); err != nil {
				return fmt.Errorf("element %s[%d]: %w", tag, i, err)
			}
		}
	}

	for _, w := range scope.Wires {
		w.Refresh()
	}

	purgeUnclaimedPorts(ctx, scope)

	scope.VerilogMetadata = doc.VerilogMetadata
	scope.TestbenchData = doc.TestbenchData
	scope.RestrictedElementsUsed = doc.RestrictedCircuitElementsUsed

	l.resolveLayout(ctx, scope, doc.Layout)

	if scope.Folders != nil {
		scope.Folders.Load(folderRecords(doc.Folders), doc.SubcircuitMap)
	}

	logger.Debug("Scope reconstructed.", "elements", scope.ElementCount(), "wires", len(scope.Wires))
	return nil
}

// normalizeElementKeys remaps legacy document keys through the rectification
// table and rejects any key that still resolves to nothing: records under an
// unknown tag must fail loudly, not vanish.
func (l *Loader) normalizeElementKeys(elements map[string][]*document.Element) (map[string][]*document.Element, error) {
	out := make(map[string][]*document.Element, len(elements))
	for _, key := range sortedKeys(elements) {
		current := registry.Rectify(key)
		if !l.Registry.Has(current) {
			return nil, fmt.Errorf("%w: document key %q", registry.ErrUnknownElementType, key)
		}
		out[current] = append(out[current], elements[key]...)
	}
	return out, nil
}

// resolveLayout adopts the document's layout record when present, and
// otherwise synthesizes the exact geometry older saves would have carried,
// including per-port layout positions. The title-visibility default is
// applied independently afterwards: documents that stored a layout before
// the flag existed still get a visible title.
func (l *Loader) resolveLayout(ctx context.Context, scope *circuit.Scope, doc *document.Layout) {
	logger := ctxlog.FromContext(ctx)

	if doc != nil {
		scope.Layout = circuit.Layout{
			Width:        doc.Width,
			Height:       doc.Height,
			TitleX:       doc.TitleX,
			TitleY:       doc.TitleY,
			TitleEnabled: true,
		}
		if doc.TitleEnabled != nil {
			scope.Layout.TitleEnabled = *doc.TitleEnabled
		} else {
			logger.Debug("Layout record predates title visibility, defaulting to visible.")
		}
		return
	}

	inputs := scope.ElementsByTag(element.TagInput)
	outputs := scope.ElementsByTag(element.TagOutput)
	scope.Layout = circuit.SynthesizeLayout(len(inputs), len(outputs))
	logger.Debug("Document has no layout record, synthesized one.",
		"inputs", len(inputs), "outputs", len(outputs), "height", scope.Layout.Height)

	for i, c := range inputs {
		if port, ok := c.(element.LayoutPort); ok {
			port.SetPortLayout(element.PortLayout{
				X:  0,
				Y:  circuit.PortY(scope.Layout.Height, len(inputs), i),
				ID: uuid.NewString(),
			})
		}
	}
	for i, c := range outputs {
		if port, ok := c.(element.LayoutPort); ok {
			port.SetPortLayout(element.PortLayout{
				X:  scope.Layout.Width,
				Y:  circuit.PortY(scope.Layout.Height, len(outputs), i),
				ID: uuid.NewString(),
			})
		}
	}
}

func folderRecords(docs []*document.Folder) []folders.Folder {
	out := make([]folders.Folder, 0, len(docs))
	for _, d := range docs {
		if d == nil {
			continue
		}
		out = append(out, folders.Folder{ID: d.ID, Name: d.Name, ParentID: d.ParentID})
	}
	return out
}
