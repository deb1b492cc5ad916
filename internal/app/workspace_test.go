package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunal-10-cloud/CircuitVerse/internal/session"
)

func writeWorkspace(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workspace.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWorkspaceAppliesEditorSettings(t *testing.T) {
	path := writeWorkspace(t, `
editor {
  default_project_name = "Lab Projects"
  clock_period         = 250
  clock_enabled        = false
  restricted_elements  = ["Rom", "SubCircuit"]
}
`)
	ws, err := loadWorkspace(path)
	require.NoError(t, err)

	sess := session.New()
	ws.apply(sess)

	assert.Equal(t, "Lab Projects", sess.DefaultProjectName)
	assert.Equal(t, session.ClockSettings{Period: 250, Enabled: false}, sess.Clock)
	assert.Equal(t, []string{"Rom", "SubCircuit"}, sess.RestrictedElements)
}

func TestLoadWorkspacePartialFileKeepsDefaults(t *testing.T) {
	path := writeWorkspace(t, `
editor {
  clock_period = 100
}
`)
	ws, err := loadWorkspace(path)
	require.NoError(t, err)

	sess := session.New()
	ws.apply(sess)

	assert.Equal(t, "Untitled", sess.DefaultProjectName)
	assert.Equal(t, session.ClockSettings{Period: 100, Enabled: true}, sess.Clock)
	assert.Empty(t, sess.RestrictedElements)
}

func TestLoadWorkspaceEmptyPathIsNoWorkspace(t *testing.T) {
	ws, err := loadWorkspace("")
	require.NoError(t, err)

	sess := session.New()
	ws.apply(sess)
	assert.Equal(t, "Untitled", sess.DefaultProjectName)
}

func TestLoadWorkspaceMissingFileFails(t *testing.T) {
	_, err := loadWorkspace(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestLoadWorkspaceRejectsMalformedHCL(t *testing.T) {
	path := writeWorkspace(t, `editor {`)
	_, err := loadWorkspace(path)
	require.Error(t, err)
}
