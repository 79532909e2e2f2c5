package config

import "time"

// FeedsConfig holds the CapMetro feed endpoints on the Texas Open Data
// Portal. All feeds are open access, no API key required.
type FeedsConfig struct {
	VehiclePositionsJSON string `yaml:"vehiclePositionsJSON" validate:"omitempty,url"`
	TripUpdatesPB        string `yaml:"tripUpdatesPB" validate:"omitempty,url"`
	ServiceAlertsPB      string `yaml:"serviceAlertsPB" validate:"omitempty,url"`
	StaticZip            string `yaml:"staticZip" validate:"omitempty,url"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the root configuration structure.
type Config struct {
	CacheDir               string        `yaml:"cacheDir"`
	HTTPTimeoutSeconds     int           `yaml:"httpTimeoutSeconds" validate:"gte=0"`
	DownloadTimeoutSeconds int           `yaml:"downloadTimeoutSeconds" validate:"gte=0"`
	Feeds                  FeedsConfig   `yaml:"feeds"`
	Logging                LoggingConfig `yaml:"logging"`
}

// HTTPTimeout is the per-request deadline for feed fetches.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// DownloadTimeout is the deadline for the (much larger) static zip download.
func (c Config) DownloadTimeout() time.Duration {
	return time.Duration(c.DownloadTimeoutSeconds) * time.Second
}
