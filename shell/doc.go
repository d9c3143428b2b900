// Package shell is the interactive front end of citypath.
//
// Each input line is one command; a "> " prompt is written before every read.
// Results go to the output writer, diagnostics ("…, see help.") to the error
// writer.
//
//	help                 list commands
//	exit                 stop
//	count                number of street nodes
//	node <index>         node at index in ascending-ID order
//	nearest <lat> <lon>  node closest to a coordinate
//	shortest <src> <dst> distance in miles
//	fastest <src> <dst>  travel time; remembers the trip
//	save                 write the remembered trip as CSV via a SinkFactory
//	print                step-by-step directions for the remembered trip
//
// Saved trips are named "<first>_<last>_<n>steps.csv" and hold a
// "mode,node_id" header followed by one row per step.
package shell
