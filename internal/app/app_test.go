package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalProjectJSON = `{
	"name": "adder",
	"scopes": [{
		"id": "1", "name": "main",
		"allNodes": [],
		"Input": [{"objectType": "Input", "x": 100, "y": 100, "customData": {}}],
		"Output": [{"objectType": "Output", "x": 300, "y": 100, "customData": {}}]
	}]
}`

func writeProject(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAppLoadsProjectAndPrintsSummary(t *testing.T) {
	path := writeProject(t, t.TempDir(), "adder.cv", minimalProjectJSON)

	var out strings.Builder
	cfg, err := NewConfig(Config{ProjectPath: path, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, err)

	a := NewApp(&out, cfg)
	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, "adder", a.Session().ProjectName)
	require.Len(t, a.Session().Scopes(), 1)
	assert.Contains(t, out.String(), `Project "adder" loaded.`)
	assert.Contains(t, out.String(), "main")
}

func TestAppCheckModeReportsEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "good.cv", minimalProjectJSON)
	writeProject(t, dir, "bad.cv", `{"scopes": [{"id": "1", "allNodes": [],
		"QuantumGate": [{"objectType": "QuantumGate", "x": 1, "y": 1, "customData": {}}]}]}`)

	var out strings.Builder
	cfg, err := NewConfig(Config{ProjectPath: dir, LogLevel: "error", LogFormat: "text", CheckMode: true})
	require.NoError(t, err)

	a := NewApp(&out, cfg)
	err = a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "ok   ")
}

func TestNewConfigRequiresProjectPath(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)
}

func TestNewAppPanicsOnBrokenWorkspace(t *testing.T) {
	cfg, err := NewConfig(Config{
		ProjectPath:   "ignored.cv",
		WorkspacePath: filepath.Join(t.TempDir(), "missing.hcl"),
		LogLevel:      "error",
		LogFormat:     "text",
	})
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewApp(&strings.Builder{}, cfg)
	})
}
