package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration. The feed URLs point at the
// Texas Open Data Portal downloads for CapMetro Austin.
func Default() Config {
	return Config{
		CacheDir:               defaultCacheDir(),
		HTTPTimeoutSeconds:     30,
		DownloadTimeoutSeconds: 120,
		Feeds: FeedsConfig{
			VehiclePositionsJSON: "https://data.texas.gov/download/cuc7-ywmd/text%2Fplain",
			TripUpdatesPB:        "https://data.texas.gov/download/rmk2-acnw/application%2Foctet-stream",
			ServiceAlertsPB:      "https://data.texas.gov/download/nusn-7fcn/application%2Foctet-stream",
			StaticZip:            "https://data.texas.gov/download/r4v4-vz24/application%2Fx-zip-compressed",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".capmetro", "gtfs")
	}
	return filepath.Join(home, ".capmetro", "gtfs")
}

// ConfigPath returns the location of the optional user config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".capmetro", "config.yml"), nil
}

// Load builds the effective configuration: built-in defaults, overlaid with
// ~/.capmetro/config.yml when present, then CAPMETRO_* environment
// variables. The result is validated before being returned.
func Load() (Config, error) {
	cfg := Default()

	if path, err := ConfigPath(); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.CacheDir = getEnv("CAPMETRO_CACHE_DIR", cfg.CacheDir)
	cfg.HTTPTimeoutSeconds = getIntEnv("CAPMETRO_HTTP_TIMEOUT", cfg.HTTPTimeoutSeconds)
	cfg.DownloadTimeoutSeconds = getIntEnv("CAPMETRO_DOWNLOAD_TIMEOUT", cfg.DownloadTimeoutSeconds)
	cfg.Logging.Level = getEnv("CAPMETRO_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.File = getEnv("CAPMETRO_LOG_FILE", cfg.Logging.File)
	cfg.Feeds.VehiclePositionsJSON = getEnv("CAPMETRO_VEHICLE_POSITIONS_URL", cfg.Feeds.VehiclePositionsJSON)
	cfg.Feeds.TripUpdatesPB = getEnv("CAPMETRO_TRIP_UPDATES_URL", cfg.Feeds.TripUpdatesPB)
	cfg.Feeds.ServiceAlertsPB = getEnv("CAPMETRO_SERVICE_ALERTS_URL", cfg.Feeds.ServiceAlertsPB)
	cfg.Feeds.StaticZip = getEnv("CAPMETRO_STATIC_ZIP_URL", cfg.Feeds.StaticZip)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
