package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/kunal-10-cloud/CircuitVerse/internal/ctxlog"
	"github.com/kunal-10-cloud/CircuitVerse/internal/loader"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
	"github.com/kunal-10-cloud/CircuitVerse/internal/session"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	session  *session.Session
	loader   *loader.Loader
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	workspace, err := loadWorkspace(appConfig.WorkspacePath)
	if err != nil {
		// A failure to load the workspace is a fatal startup error.
		panic(err)
	}
	logger.Debug("Workspace settings loaded.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All element modules registered.", "count", len(modules))

	// A registry that fails validation is a programmer error, so we panic.
	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	sess := session.New()
	workspace.apply(sess)

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		session:  sess,
		loader:   loader.New(reg, sess),
		config:   appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Session returns the application's session. This is primarily for testing.
func (a *App) Session() *session.Session {
	return a.session
}
