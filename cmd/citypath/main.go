// Command citypath loads an OSM street map and an optional bus system and
// answers trip-planning commands read from stdin.
//
//	citypath -config citypath.yaml
//
// Settings come from the YAML file, a .env file in the working directory and
// CITYPATH_* environment variables (see package config).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/citypath/bussystem"
	"github.com/katalvlaran/citypath/config"
	"github.com/katalvlaran/citypath/planner"
	"github.com/katalvlaran/citypath/shell"
	"github.com/katalvlaran/citypath/streetmap"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration file")
	envPath := flag.String("env", ".env", "optional dotenv file loaded before the configuration")
	flag.Parse()

	_ = godotenv.Load(*envPath)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "citypath:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sm, err := loadStreetMap(ctx, cfg.Data.OSM)
	if err != nil {
		return err
	}
	bs, err := loadBusSystem(cfg.Data.Stops, cfg.Data.Routes)
	if err != nil {
		return err
	}

	start := time.Now()
	p, err := planner.New(cfg.PlannerConfiguration(sm, bs), cfg.PlannerOptions(logger)...)
	if err != nil {
		return err
	}
	logger.Info("ready", "nodes", p.NodeCount(), "elapsed", time.Since(start))

	sh, err := shell.New(p, shell.DirSinkFactory{Dir: cfg.Data.Results}, os.Stdin, os.Stdout, os.Stderr,
		shell.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func loadStreetMap(ctx context.Context, path string) (*streetmap.OpenStreetMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open street map: %w", err)
	}
	defer f.Close()

	sm, err := streetmap.Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	slog.Info("street map loaded", "file", path, "nodes", sm.NodeCount(), "ways", sm.WayCount())

	return sm, nil
}

// loadBusSystem returns an empty system when no stop and route files are set.
func loadBusSystem(stopsPath, routesPath string) (*bussystem.System, error) {
	if stopsPath == "" && routesPath == "" {
		slog.Info("no bus system configured")
		return bussystem.New(), nil
	}

	stops, err := os.Open(stopsPath)
	if err != nil {
		return nil, fmt.Errorf("open stops: %w", err)
	}
	defer stops.Close()

	routes, err := os.Open(routesPath)
	if err != nil {
		return nil, fmt.Errorf("open routes: %w", err)
	}
	defer routes.Close()

	bs, err := bussystem.LoadCSV(stops, routes)
	if err != nil {
		return nil, fmt.Errorf("load bus system: %w", err)
	}
	slog.Info("bus system loaded", "stops", bs.StopCount(), "routes", bs.RouteCount())

	return bs, nil
}
