package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
)

type tagOnly string

func (t tagOnly) Tag() string { return string(t) }

func TestNewSessionDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, "Untitled", s.DefaultProjectName)
	assert.Equal(t, ClockSettings{Period: 500, Enabled: true}, s.Clock)
	require.NotNil(t, s.Factory)
	require.NotNil(t, s.Sim)
	require.NotNil(t, s.Backup)
	require.NotNil(t, s.Notice)
}

func TestAddAndLookupScopes(t *testing.T) {
	s := New()
	a := circuit.NewScope("a", "1")
	b := circuit.NewScope("b", "2")
	s.AddScope(a)
	s.AddScope(b)

	assert.Equal(t, []*circuit.Scope{a, b}, s.Scopes())
	assert.Same(t, a, s.ScopeByID("1"))
	assert.Nil(t, s.ScopeByID("9"))

	s.SetActive(b)
	assert.Same(t, b, s.Active())
}

func TestResetKeepsCollaborators(t *testing.T) {
	s := New()
	factory := s.Factory
	s.AddScope(circuit.NewScope("a", "1"))
	s.SetActive(s.Scopes()[0])
	s.TabOrder = []string{"1"}
	s.Clock = ClockSettings{Period: 100, Enabled: false}

	s.Reset()

	assert.Empty(t, s.Scopes())
	assert.Nil(t, s.Active())
	assert.Nil(t, s.ScopeByID("1"))
	assert.Nil(t, s.TabOrder)
	assert.Equal(t, ClockSettings{Period: 500, Enabled: true}, s.Clock)
	assert.Same(t, factory, s.Factory)
}

func TestRefreshRestricted(t *testing.T) {
	s := New()
	scope := circuit.NewScope("a", "1")
	scope.AddElement(tagOnly("Rom"))
	scope.AddElement(tagOnly("AndGate"))

	// With no restricted set configured the bookkeeping is untouched.
	scope.RestrictedElementsUsed = []string{"stale"}
	s.RefreshRestricted(scope)
	assert.Equal(t, []string{"stale"}, scope.RestrictedElementsUsed)

	s.RestrictedElements = []string{"Rom", "SubCircuit"}
	s.RefreshRestricted(scope)
	assert.Equal(t, []string{"Rom"}, scope.RestrictedElementsUsed)
}

func TestDefaultFactoryWiresFolderStore(t *testing.T) {
	s := New()
	scope, err := s.Factory.Create(context.Background(), "main", "1", true, true)
	require.NoError(t, err)
	s.AddScope(scope)

	assert.True(t, scope.IsVerilogDerived)
	assert.True(t, scope.IsMain)
	require.NotNil(t, scope.Folders)

	folder, err := scope.Folders.Create("adders", "")
	require.NoError(t, err)

	// The store's existence check is bound to the session's loaded scopes.
	require.NoError(t, scope.Folders.Move("1", folder))
	require.Error(t, scope.Folders.Move("unloaded", folder))
}
