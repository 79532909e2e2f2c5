// Package gtfs loads and indexes CapMetro's static GTFS tables from the
// local cache directory.
//
// Routes, trips, stops, and agency metadata are small and held fully in
// memory. stop_times.txt is large, so it is scanned on demand per stop or
// per trip instead of being indexed up front.
//
// The cache directory is populated by Refresh, which downloads the GTFS
// zip archive and extracts its tables with delete-and-replace semantics.
package gtfs
