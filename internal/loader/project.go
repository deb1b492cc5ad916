package loader

import (
	"context"
	"fmt"

	"github.com/kunal-10-cloud/CircuitVerse/internal/ctxlog"
	"github.com/kunal-10-cloud/CircuitVerse/internal/document"
	"github.com/kunal-10-cloud/CircuitVerse/internal/session"
)

// Load rebuilds the whole session from a project document. A nil document is
// the new-project path: the session is reset and named, and nothing is
// constructed.
//
// Scopes load strictly in document order. Each one becomes the active scope
// as it finishes, gets one simulation pass and one backup snapshot, and has
// its restricted-element bookkeeping refreshed. Cross-scope state (clock,
// tab order, focus) is restored after every scope exists.
func (l *Loader) Load(ctx context.Context, doc *document.Project) error {
	logger := ctxlog.FromContext(ctx)
	sess := l.Session

	sess.Reset()
	if doc == nil {
		sess.ProjectName = sess.DefaultProjectName
		logger.Info("No project document, starting a new project.", "name", sess.ProjectName)
		return nil
	}

	sess.ProjectName = doc.Name
	if sess.ProjectName == "" {
		sess.ProjectName = sess.DefaultProjectName
	}

	for i, scopeDoc := range doc.Scopes {
		if scopeDoc == nil {
			return fmt.Errorf("scope document %d is null", i)
		}
		name := scopeDoc.Name
		if name == "" {
			name = "Untitled-Circuit"
		}
		isVerilog, isMain := false, false
		if scopeDoc.VerilogMetadata != nil {
			isVerilog = scopeDoc.VerilogMetadata.IsVerilogCircuit
			isMain = scopeDoc.VerilogMetadata.IsMainCircuit
		}

		scope, err := sess.Factory.Create(ctx, name, string(scopeDoc.ID), isVerilog, isMain)
		if err != nil {
			return fmt.Errorf("failed to create scope %q: %w", name, err)
		}
		sess.AddScope(scope)

		if err := l.ReconstructScope(ctx, scope, scopeDoc); err != nil {
			// A partially-built scope is worse than a visible failure.
			msg := fmt.Sprintf("Could not load circuit %q: %v", name, err)
			sess.Notice.Notify(ctx, msg)
			logger.Error("Scope reconstruction failed.", "scope", name, "error", err)
			return fmt.Errorf("scope %q: %w", name, err)
		}

		sess.SetActive(scope)
		sess.Sim.ScheduleUpdate(ctx, scope)
		sess.Backup.Snapshot(ctx, scope)
		sess.RefreshRestricted(scope)
	}

	if doc.TimePeriod != nil {
		sess.Clock.Period = *doc.TimePeriod
	} else {
		sess.Clock.Period = session.DefaultClockPeriod
	}
	if doc.ClockEnabled != nil {
		sess.Clock.Enabled = *doc.ClockEnabled
	} else {
		sess.Clock.Enabled = true
	}

	if len(doc.OrderedTabs) > 0 {
		order := make([]string, 0, len(doc.OrderedTabs))
		for _, id := range doc.OrderedTabs {
			if sess.ScopeByID(string(id)) == nil {
				logger.Warn("Ordered tab references an unloaded scope, skipping.", "id", string(id))
				continue
			}
			order = append(order, string(id))
		}
		sess.TabOrder = order
	}

	if doc.FocussedCircuit != "" {
		if focused := sess.ScopeByID(string(doc.FocussedCircuit)); focused != nil {
			sess.SetActive(focused)
		} else {
			logger.Warn("Focussed circuit not found, keeping last-created scope active.",
				"id", string(doc.FocussedCircuit))
		}
	}

	logger.Info("Project loaded.", "name", sess.ProjectName, "scopes", len(doc.Scopes))
	return nil
}
