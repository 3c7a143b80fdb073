// Package catalog reads seismic event catalogs.
//
// Two interchange formats are supported: SOD-style event CSV files and
// the 5-line NDK blocks distributed with moment tensor catalogs. Both
// parse into types implementing the Event interface, which carries the
// origin time, hypocenter and preferred magnitude that trace headers
// need.
//
// The format of a file or stream can be sniffed with Detect, and
// ReadEvents dispatches to the right parser automatically.
package catalog
