// File: loader.go
// Role: YAML loading, defaults, environment overrides and validation.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/citypath/bussystem"
	"github.com/katalvlaran/citypath/planner"
	"github.com/katalvlaran/citypath/streetmap"
)

// Defaults for keys the YAML file leaves out.
const (
	DefaultWalkSpeed      = 3.0
	DefaultBikeSpeed      = 8.0
	DefaultSpeedLimit     = 25.0
	DefaultBusStopTime    = 30.0
	DefaultPrecomputeTime = 30
	DefaultCacheSize      = 1024
	DefaultResultsDir     = "results"
	DefaultLogLevel       = "info"
)

// Environment variables that override the file.
const (
	EnvOSM       = "CITYPATH_OSM"
	EnvStops     = "CITYPATH_STOPS"
	EnvRoutes    = "CITYPATH_ROUTES"
	EnvResults   = "CITYPATH_RESULTS"
	EnvLogLevel  = "CITYPATH_LOG_LEVEL"
	EnvWalkSpeed = "CITYPATH_WALK_SPEED"
	EnvBikeSpeed = "CITYPATH_BIKE_SPEED"
)

// Load reads the YAML file at path (skipped when path is empty), fills in
// defaults, applies environment overrides and validates the result.
// Defaults are seeded before decoding, so a key set to 0 in the file keeps 0.
func Load(path string) (*AppConfig, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return &cfg, nil
}

// Defaults returns the configuration used for keys absent from the file.
func Defaults() AppConfig {
	return AppConfig{
		Data: DataConfig{Results: DefaultResultsDir},
		Planner: PlannerConfig{
			WalkSpeed:         DefaultWalkSpeed,
			BikeSpeed:         DefaultBikeSpeed,
			DefaultSpeedLimit: DefaultSpeedLimit,
			BusStopTime:       DefaultBusStopTime,
			PrecomputeTime:    DefaultPrecomputeTime,
			BikePriority:      true,
			CacheSize:         DefaultCacheSize,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

func (c *AppConfig) applyEnv() {
	c.Data.OSM = getEnv(EnvOSM, c.Data.OSM)
	c.Data.Stops = getEnv(EnvStops, c.Data.Stops)
	c.Data.Routes = getEnv(EnvRoutes, c.Data.Routes)
	c.Data.Results = getEnv(EnvResults, c.Data.Results)
	c.Log.Level = strings.ToLower(getEnv(EnvLogLevel, c.Log.Level))
	c.Planner.WalkSpeed = getEnvFloat(EnvWalkSpeed, c.Planner.WalkSpeed)
	c.Planner.BikeSpeed = getEnvFloat(EnvBikeSpeed, c.Planner.BikeSpeed)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// PlannerConfiguration combines the loaded data with the planner settings.
func (c *AppConfig) PlannerConfiguration(sm streetmap.StreetMap, bs bussystem.BusSystem) planner.StaticConfiguration {
	return planner.StaticConfiguration{
		Streets:           sm,
		Buses:             bs,
		WalkSpeedMPH:      c.Planner.WalkSpeed,
		BikeSpeedMPH:      c.Planner.BikeSpeed,
		RoadSpeedMPH:      c.Planner.DefaultSpeedLimit,
		BusStopSeconds:    c.Planner.BusStopTime,
		PrecomputeSeconds: c.Planner.PrecomputeTime,
	}
}

// PlannerOptions returns the planner options implied by the configuration.
func (c *AppConfig) PlannerOptions(logger *slog.Logger) []planner.Option {
	return []planner.Option{
		planner.WithBikePriority(c.Planner.BikePriority),
		planner.WithQueryCache(c.Planner.CacheSize),
		planner.WithLogger(logger),
	}
}

// SlogLevel maps Log.Level onto an slog.Level; unknown values map to Info.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
