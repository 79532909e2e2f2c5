// Package utils provides small shared helpers for the capmetro CLI.
//
// It contains:
//   - Great-circle distance in miles (stop proximity search)
//   - GTFS time-of-day and clock formatting helpers
//   - Numeric-aware sort keys for route identifiers
package utils
