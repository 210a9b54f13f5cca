package main

import (
	"fmt"

	"github.com/noted-app/noted/internal/adapter"
	"github.com/noted-app/noted/internal/client"
	"github.com/noted-app/noted/internal/config"
	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/internal/service"
	"github.com/noted-app/noted/internal/session"
	"github.com/noted-app/noted/internal/store"
	"github.com/noted-app/noted/internal/tui"
	"github.com/noted-app/noted/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("noted-client")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPNotesAPI(cfg.API, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sess := session.New()
	services := service.NewServices(api, sess, storages, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
