// Command mayjs opens the character viewers and the maze game in a window.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/mayjs/mayjs3d/app"
	"github.com/mayjs/mayjs3d/internal/config"
	"github.com/mayjs/mayjs3d/internal/logging"
	log "github.com/sirupsen/logrus"
)

func main() {

	configPath := flag.String("config", "", "path to a YAML config file laid over the defaults")
	route := flag.String("route", "", "screen to open at startup: "+app.RouteShowcase+", "+app.RouteCarousel+" or "+app.RouteGame)
	logLevel := flag.String("log-level", "", "log level override: debug, info, warn or error")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("Invalid config")
		}
		cfg = loaded
	}

	if *route != "" {
		cfg.Route = *route
	}

	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid config")
	}

	entry, err := logging.Setup(cfg.Log, os.Stderr)
	if err != nil {
		log.WithError(err).Fatal("Invalid log settings")
	}

	game, err := app.New(context.Background(), cfg, entry)
	if err != nil {
		entry.WithError(err).WithField("route", cfg.Route).Fatal("Couldn't start")
	}

	entry.WithField("route", cfg.Route).Info("Starting")

	if err := game.Run(); err != nil {
		entry.WithError(err).Fatal("Game stopped")
	}

}
