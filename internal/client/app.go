package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/models"
	"github.com/spf13/cobra"
)

// App is the proxyctl command tree.
type App struct {
	root  *cobra.Command
	flags *config.StructuredConfig
	build models.AppBuildInfo
	deps  Dependencies

	newLogger func(dataDir string) *logger.Logger

	// set by the root PersistentPreRunE
	cfg    *config.ClientConfig
	handle *app.Handle
	logger *logger.Logger
}

// NewApp builds the command tree. A nil deps uses [NewDependencies].
func NewApp(build models.AppBuildInfo, deps Dependencies) *App {
	if deps == nil {
		deps = NewDependencies()
	}

	a := &App{
		build: build,
		deps:  deps,
		newLogger: func(dataDir string) *logger.Logger {
			return logger.NewClientLogger("proxyctl", dataDir)
		},
	}

	a.root = &cobra.Command{
		Use:               "proxyctl",
		Short:             "Control the background proxy and its rule lists",
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}
	a.flags = config.RegisterFlags(a.root.PersistentFlags())

	a.root.AddCommand(
		a.newVersionCmd(),
		a.newToggleCmd(),
		a.newACLCmd(),
	)

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// loadConfig resolves the configuration once flags are parsed and prepares
// the data directory, the log file and the application handle.
func (a *App) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if err = os.MkdirAll(cfg.App.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	a.cfg = cfg
	a.logger = a.newLogger(cfg.App.DataDir)
	a.logger.Debug().Str("command", cmd.CommandPath()).Any("config", cfg).Msg("received configs")

	a.handle, err = app.NewHandle(cfg.App.DataDir, app.NewLogTracker(a.logger))
	if err != nil {
		return fmt.Errorf("create app handle: %w", err)
	}

	return nil
}
