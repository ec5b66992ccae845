package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/handler"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/server"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
	"github.com/MKhiriev/go-proxy-keeper/internal/workers"
	"github.com/MKhiriev/go-proxy-keeper/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	root := &cobra.Command{
		Use:          "proxykeeperd",
		Short:        "Run the rule list maintenance daemon",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	flags := config.RegisterFlags(root.Flags())

	root.RunE = func(cmd *cobra.Command, _ []string) error {
		fmt.Print(buildInfo.String())
		return run(cmd.Context(), flags, buildInfo)
	}
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), buildInfo.String())
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, flags *config.StructuredConfig, buildInfo models.AppBuildInfo) error {
	log := logger.NewLogger("proxykeeperd")

	cfg, err := config.GetDaemonConfig(flags)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return err
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	tracker := app.NewLogTracker(log)
	handle, err := app.NewHandle(cfg.App.DataDir, tracker)
	if err != nil {
		log.Error().Err(err).Msg("error creating app handle")
		return err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, handle.DataDir(), log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		return err
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	source, err := adapter.NewHTTPAclSource(cfg.ACL, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating acl source")
		return err
	}

	services, err := service.NewServices(storages, source, handle, cfg.App, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		return err
	}

	dispatcher := workers.NewDispatcher(
		storages.JobRequestRepository,
		services.JobRunners,
		workers.NewSystemConditions(cfg.Workers, log),
		tracker,
		cfg.Workers,
		log,
	)

	running := []workers.Worker{
		workers.NewStartupScheduler(services.SyncJobScheduler, cfg.Workers.ScheduleRoutes, log),
		dispatcher,
	}

	if cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(services, cfg.Server, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating handlers")
			return err
		}

		srv, err := server.NewServer(handlers, cfg.Server, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating server")
			return err
		}
		running = append(running, srv)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = workers.NewWorkers(running...).Run(ctx); err != nil {
		log.Error().Err(err).Msg("daemon stopped with error")
		return err
	}

	log.Info().Msg("daemon stopped")
	return nil
}
