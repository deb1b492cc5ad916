package app

import (
	"context"
	"fmt"

	"github.com/kunal-10-cloud/CircuitVerse/internal/ctxlog"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.CheckMode {
		return a.CheckProjects(ctx, a.config.ProjectPath)
	}

	if err := a.LoadProject(ctx, a.config.ProjectPath); err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "Project %q loaded.\n", a.session.ProjectName)
	for _, scope := range a.session.Scopes() {
		marker := " "
		if scope == a.session.Active() {
			marker = "*"
		}
		fmt.Fprintf(a.outW, "%s %-24s elements=%-4d nodes=%-4d wires=%d\n",
			marker, scope.Name, scope.ElementCount(), len(scope.AllNodes), len(scope.Wires))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
