package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-proxy-keeper/internal/client"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), client.NewDependencies())
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
