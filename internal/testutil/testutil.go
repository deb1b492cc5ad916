// Package testutil provides shared fixtures for the loader and session test
// suites: a thread-safe log buffer, recording collaborator fakes, and a
// harness that wires a registry, session, and loader the way the app does.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kunal-10-cloud/CircuitVerse/elements/gates"
	"github.com/kunal-10-cloud/CircuitVerse/elements/io"
	"github.com/kunal-10-cloud/CircuitVerse/elements/memory"
	"github.com/kunal-10-cloud/CircuitVerse/elements/sequential"
	"github.com/kunal-10-cloud/CircuitVerse/elements/subcircuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/ctxlog"
	"github.com/kunal-10-cloud/CircuitVerse/internal/document"
	"github.com/kunal-10-cloud/CircuitVerse/internal/loader"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
	"github.com/kunal-10-cloud/CircuitVerse/internal/session"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordingSimulator counts scheduled simulation passes.
type RecordingSimulator struct {
	mu     sync.Mutex
	Scopes []*circuit.Scope
}

func (r *RecordingSimulator) ScheduleUpdate(_ context.Context, scope *circuit.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Scopes = append(r.Scopes, scope)
}

// Count returns how many updates were scheduled.
func (r *RecordingSimulator) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Scopes)
}

// RecordingBackup counts snapshot requests.
type RecordingBackup struct {
	mu        sync.Mutex
	Snapshots int
}

func (r *RecordingBackup) Snapshot(context.Context, *circuit.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Snapshots++
}

// Count returns how many snapshots were requested.
func (r *RecordingBackup) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Snapshots
}

// RecordingNotifier captures user-facing messages.
type RecordingNotifier struct {
	mu       sync.Mutex
	Messages []string
}

func (r *RecordingNotifier) Notify(_ context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, message)
}

// All returns a copy of the captured messages.
func (r *RecordingNotifier) All() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Messages...)
}

// Harness bundles a fully wired registry, session, and loader plus the
// recording collaborators and the log buffer the context logger writes to.
type Harness struct {
	Registry *registry.Registry
	Session  *session.Session
	Loader   *loader.Loader

	Sim    *RecordingSimulator
	Backup *RecordingBackup
	Notice *RecordingNotifier

	Logs *SafeBuffer
	Ctx  context.Context
}

// NewHarness wires the full element set into a registry and attaches
// recording collaborators to a fresh session.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	reg := registry.New()
	for _, mod := range []registry.Module{
		&io.Module{},
		&gates.Module{},
		&sequential.Module{},
		&memory.Module{},
		&subcircuit.Module{},
	} {
		mod.Register(reg)
	}

	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	require.NoError(t, reg.Validate(ctx))

	sess := session.New()
	h := &Harness{
		Registry: reg,
		Session:  sess,
		Loader:   loader.New(reg, sess),
		Sim:      &RecordingSimulator{},
		Backup:   &RecordingBackup{},
		Notice:   &RecordingNotifier{},
		Logs:     logs,
		Ctx:      ctx,
	}
	sess.Sim = h.Sim
	sess.Backup = h.Backup
	sess.Notice = h.Notice
	return h
}

// LoadJSON parses raw project JSON and loads it through the harness loader.
func (h *Harness) LoadJSON(t *testing.T, raw string) error {
	t.Helper()
	doc, err := document.ParseProject([]byte(raw))
	require.NoError(t, err)
	return h.Loader.Load(h.Ctx, doc)
}

// MustLoadJSON is LoadJSON for documents the test expects to load cleanly.
func (h *Harness) MustLoadJSON(t *testing.T, raw string) {
	t.Helper()
	require.NoError(t, h.LoadJSON(t, raw))
}
