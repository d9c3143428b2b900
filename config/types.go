package config

import "errors"

// ErrInvalid wraps validation failures reported by Load.
var ErrInvalid = errors.New("config: invalid configuration")

// DataConfig locates the input files and the results directory.
type DataConfig struct {
	OSM     string `yaml:"osm" validate:"required"`
	Stops   string `yaml:"stops" validate:"required_with=Routes"`
	Routes  string `yaml:"routes" validate:"required_with=Stops"`
	Results string `yaml:"results" validate:"required"`
}

// PlannerConfig holds travel speeds (mph), bus dwell time and precompute
// budget (seconds) and optional planner behavior.
type PlannerConfig struct {
	WalkSpeed         float64 `yaml:"walk_speed" validate:"gt=0"`
	BikeSpeed         float64 `yaml:"bike_speed" validate:"gt=0"`
	DefaultSpeedLimit float64 `yaml:"default_speed_limit" validate:"gt=0"`
	BusStopTime       float64 `yaml:"bus_stop_time" validate:"gte=0"`
	PrecomputeTime    int     `yaml:"precompute_time" validate:"gte=0"`
	BikePriority      bool    `yaml:"bike_priority"`
	CacheSize         int     `yaml:"cache_size" validate:"gte=0"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Planner PlannerConfig `yaml:"planner"`
	Log     LogConfig     `yaml:"log"`
}
