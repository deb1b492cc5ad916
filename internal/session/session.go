// Package session owns the editor's cross-scope state: the ordered scope
// list, the active-scope pointer, clock settings, and the collaborator
// surfaces reconstruction needs. It replaces what would otherwise be a bag of
// free-floating globals; every operation that needs "the current scope" takes
// the session explicitly.
package session

import (
	"context"

	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
)

// DefaultClockPeriod is applied when a project document omits clock settings.
const DefaultClockPeriod = 500

// ScopeFactory creates empty scopes with their identity and flags. The
// project loader is its only caller during a load.
type ScopeFactory interface {
	Create(ctx context.Context, name, id string, isVerilogDerived, isMain bool) (*circuit.Scope, error)
}

// Simulator triggers a simulation pass over a scope. The event queue itself
// lives outside this core.
type Simulator interface {
	ScheduleUpdate(ctx context.Context, scope *circuit.Scope)
}

// BackupScheduler schedules a backup snapshot of the current project state.
type BackupScheduler interface {
	Snapshot(ctx context.Context, scope *circuit.Scope)
}

// Notifier shows a transient status message on whatever UI surface is
// attached.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// ClockSettings is the project-wide simulation clock configuration.
type ClockSettings struct {
	Period  int
	Enabled bool
}

// Session is the explicit editor context threaded through load and folder
// operations.
type Session struct {
	ProjectName string

	// DefaultProjectName seeds ProjectName on the new-project path. Set from
	// workspace configuration; falls back to "Untitled".
	DefaultProjectName string

	Clock    ClockSettings
	TabOrder []string

	Factory ScopeFactory
	Sim     Simulator
	Backup  BackupScheduler
	Notice  Notifier

	// RestrictedElements is the app-level set of element tags whose use is
	// tracked per scope.
	RestrictedElements []string

	scopes []*circuit.Scope
	byID   map[string]*circuit.Scope
	active *circuit.Scope
}

// New creates a session with no-op collaborators and a default scope factory;
// callers replace the fields they care about.
func New() *Session {
	s := &Session{
		DefaultProjectName: "Untitled",
		Clock:              ClockSettings{Period: DefaultClockPeriod, Enabled: true},
		byID:               make(map[string]*circuit.Scope),
	}
	s.Factory = &defaultFactory{session: s}
	s.Sim = nopSimulator{}
	s.Backup = nopBackup{}
	s.Notice = nopNotifier{}
	return s
}

// Reset discards all scopes and cross-scope state, keeping collaborators.
func (s *Session) Reset() {
	s.scopes = nil
	s.byID = make(map[string]*circuit.Scope)
	s.active = nil
	s.TabOrder = nil
	s.Clock = ClockSettings{Period: DefaultClockPeriod, Enabled: true}
}

// AddScope appends a scope and indexes it by id.
func (s *Session) AddScope(scope *circuit.Scope) {
	s.scopes = append(s.scopes, scope)
	s.byID[scope.ID] = scope
}

// ScopeByID returns the loaded scope with the given id, or nil.
func (s *Session) ScopeByID(id string) *circuit.Scope {
	return s.byID[id]
}

// Scopes returns the scopes in load order. The slice is owned by the session.
func (s *Session) Scopes() []*circuit.Scope {
	return s.scopes
}

// SetActive switches the active scope.
func (s *Session) SetActive(scope *circuit.Scope) {
	s.active = scope
}

// Active returns the currently focused scope, or nil before any load.
func (s *Session) Active() *circuit.Scope {
	return s.active
}

// RefreshRestricted recomputes a scope's restricted-element bookkeeping from
// the elements it actually uses.
func (s *Session) RefreshRestricted(scope *circuit.Scope) {
	if len(s.RestrictedElements) == 0 {
		return
	}
	restricted := make(map[string]struct{}, len(s.RestrictedElements))
	for _, tag := range s.RestrictedElements {
		restricted[tag] = struct{}{}
	}
	var used []string
	for _, tag := range scope.ElementTags() {
		if _, ok := restricted[tag]; ok && len(scope.ElementsByTag(tag)) > 0 {
			used = append(used, tag)
		}
	}
	scope.RestrictedElementsUsed = used
}
