// Package config loads the citypath configuration.
//
// Sources, in increasing precedence:
//
//  1. built-in defaults (walk 3 mph, bike 8 mph, road 25 mph, 30 s dwell, …);
//  2. the YAML file passed to Load;
//  3. CITYPATH_* environment variables.
//
// The merged result is validated with go-playground/validator struct tags.
//
// Example file:
//
//	data:
//	  osm: data/city.osm
//	  stops: data/stops.csv
//	  routes: data/routes.csv
//	  results: results
//	planner:
//	  walk_speed: 3.0
//	  bike_speed: 8.0
//	  default_speed_limit: 25.0
//	  bus_stop_time: 30
//	  precompute_time: 30
//	  bike_priority: true
//	  cache_size: 1024
//	log:
//	  level: info
package config
