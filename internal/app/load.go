package app

import (
	"context"
	"fmt"
	"os"

	"github.com/kunal-10-cloud/CircuitVerse/internal/ctxlog"
	"github.com/kunal-10-cloud/CircuitVerse/internal/document"
	"github.com/kunal-10-cloud/CircuitVerse/internal/fsutil"
)

// LoadProject reads and reconstructs the project file at path into the
// application session.
func (a *App) LoadProject(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading project file...", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read project file %q: %w", path, err)
	}

	doc, err := document.ParseProject(data)
	if err != nil {
		return fmt.Errorf("failed to parse project file %q: %w", path, err)
	}

	if err := a.loader.Load(ctx, doc); err != nil {
		return fmt.Errorf("failed to load project %q: %w", path, err)
	}
	return nil
}

// CheckProjects walks root for project files and reconstructs each one in
// turn, reporting per-file results. It returns an error if any file fails,
// after checking all of them.
func (a *App) CheckProjects(ctx context.Context, root string) error {
	logger := ctxlog.FromContext(ctx)

	paths, err := fsutil.FindProjectFiles(root)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no %s files found under %q", fsutil.ProjectFileExtension, root)
	}

	failed := 0
	for _, path := range paths {
		// Load resets the session, so each file checks against clean state.
		if err := a.LoadProject(ctx, path); err != nil {
			failed++
			logger.Error("Check failed.", "path", path, "error", err)
			fmt.Fprintf(a.outW, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(a.outW, "ok   %s (%d circuits)\n", path, len(a.session.Scopes()))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d project files failed to load", failed, len(paths))
	}
	return nil
}
