package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secure-url/internal/adapter"
	"github.com/MKhiriev/go-secure-url/internal/client"
	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/service"
	"github.com/MKhiriev/go-secure-url/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-secure-url-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	app, err := client.NewApp(services, tui.New(os.Stdin, os.Stderr), cfg.Credentials, buildInfo(), os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		stop()
		os.Exit(1)
	}
}

func buildInfo() client.BuildInfo {
	info := client.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	if info.Version == "" {
		info.Version = "N/A"
	}
	if info.Date == "" {
		info.Date = "N/A"
	}
	if info.Commit == "" {
		info.Commit = "N/A"
	}
	return info
}
