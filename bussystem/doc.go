// Package bussystem defines the bus-network provider (stops and routes) used
// by the bus index and the planner, plus a CSV-backed implementation.
//
// Input format:
//
//	stops.csv              routes.csv
//	stop_id,node_id        route,stop_id
//	1,100                  A,1
//	2,101                  A,2
//
// A stop sits on exactly one street node. A route is the ordered list of
// its stop IDs; rows for the same route name accumulate in file order.
package bussystem
