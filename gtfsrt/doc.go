// Package gtfsrt fetches and decodes CapMetro's real-time feeds.
//
// Trip updates and service alerts arrive as GTFS-Realtime protobuf
// (decoded with the MobilityData bindings); vehicle positions use the
// portal's JSON rendering of the same feed, which needs no protobuf
// round-trip for a simple position listing.
package gtfsrt
