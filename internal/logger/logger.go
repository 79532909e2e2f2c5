package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level string // debug|info|warn|error
	File  string // optional rotating log file, empty disables the file sink
}

var (
	log  zerolog.Logger
	once sync.Once
)

// Init configures the package logger. Console output goes to stderr so it
// never interleaves with command output on stdout. Safe to call more than
// once; only the first call takes effect.
func Init(cfg Config) {
	once.Do(func() {
		writers := []io.Writer{
			zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
		}
		if cfg.File != "" {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     30, // days
			})
		}
		log = zerolog.New(io.MultiWriter(writers...)).
			With().Timestamp().Logger().
			Level(ParseLevel(cfg.Level))
	})
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// L returns the package logger.
func L() *zerolog.Logger {
	return &log
}
