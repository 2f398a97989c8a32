package winedb

var (
	// Version of WineDB.
	Version = "v0.1.0"

	// Build timestamp, set during compilation.
	Build = "n/a"
)
