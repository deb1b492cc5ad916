package app

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/kunal-10-cloud/CircuitVerse/internal/session"
)

// Workspace carries editor defaults read from an optional workspace.hcl
// file. Fields left out of the file keep their zero values and fall back to
// the session defaults.
type Workspace struct {
	Editor *EditorSettings `hcl:"editor,block"`
}

// EditorSettings mirrors the editor block of workspace.hcl.
type EditorSettings struct {
	DefaultProjectName string   `hcl:"default_project_name,optional"`
	ClockPeriod        *int     `hcl:"clock_period,optional"`
	ClockEnabled       *bool    `hcl:"clock_enabled,optional"`
	RestrictedElements []string `hcl:"restricted_elements,optional"`
}

// loadWorkspace parses the workspace file at path. An empty path is the
// no-workspace case and yields an empty Workspace.
func loadWorkspace(path string) (*Workspace, error) {
	ws := &Workspace{}
	if path == "" {
		return ws, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("workspace file %q: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse workspace file %q: %w", path, diags)
	}
	if diags := gohcl.DecodeBody(file.Body, nil, ws); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode workspace file %q: %w", path, diags)
	}
	return ws, nil
}

// apply copies the workspace's editor settings onto a freshly created
// session.
func (w *Workspace) apply(sess *session.Session) {
	if w.Editor == nil {
		return
	}
	if w.Editor.DefaultProjectName != "" {
		sess.DefaultProjectName = w.Editor.DefaultProjectName
	}
	if w.Editor.ClockPeriod != nil {
		sess.Clock.Period = *w.Editor.ClockPeriod
	}
	if w.Editor.ClockEnabled != nil {
		sess.Clock.Enabled = *w.Editor.ClockEnabled
	}
	if len(w.Editor.RestrictedElements) > 0 {
		sess.RestrictedElements = append([]string(nil), w.Editor.RestrictedElements...)
	}
}
