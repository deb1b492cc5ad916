package session

import (
	"context"

	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/folders"
)

// defaultFactory builds plain scopes whose folder stores validate subcircuit
// ids against the session and schedule a backup after every folder mutation,
// keeping folder-operation side effects coupled to the store.
type defaultFactory struct {
	session *Session
}

func (f *defaultFactory) Create(ctx context.Context, name, id string, isVerilogDerived, isMain bool) (*circuit.Scope, error) {
	scope := circuit.NewScope(name, id)
	scope.IsVerilogDerived = isVerilogDerived
	scope.IsMain = isMain
	scope.Folders = folders.NewStore(
		func(subID string) bool { return f.session.ScopeByID(subID) != nil },
		func() { f.session.Backup.Snapshot(ctx, scope) },
	)
	return scope, nil
}

type nopSimulator struct{}

func (nopSimulator) ScheduleUpdate(context.Context, *circuit.Scope) {}

type nopBackup struct{}

func (nopBackup) Snapshot(context.Context, *circuit.Scope) {}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string) {}
