// Package config resolves runtime settings from flags, the environment and
// an optional .env file.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// LogFileEnv names the file logs are appended to. Unset discards logs.
	LogFileEnv = "SPLITBILL_LOG_FILE"
	// LogLevelEnv is the minimum log level: debug, info, warn, error.
	LogLevelEnv = "LOG_LEVEL"
	// NoSeedEnv starts with an empty friend list when true.
	NoSeedEnv = "SPLITBILL_NO_SEED"
	// OTLPEndpointEnv enables trace export when set.
	OTLPEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the traced service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	DefaultServiceName = "splitbill"
)

// Config holds the parsed settings for one run.
type Config struct {
	LogFile      string
	LogLevel     slog.Level
	NoSeed       bool
	AltScreen    bool
	OTLPEndpoint string
	ServiceName  string
}

// LoadDotEnv loads .env from the working directory if present. Variables
// already in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load parses args on top of values read through getenv.
func Load(args []string, getenv func(string) string, stderr io.Writer) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	noSeed, err := parseBool(getenv(NoSeedEnv))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", NoSeedEnv, err)
	}
	cfg := Config{
		LogFile:      getenv(LogFileEnv),
		NoSeed:       noSeed,
		AltScreen:    true,
		OTLPEndpoint: getenv(OTLPEndpointEnv),
		ServiceName:  getenv(ServiceNameEnv),
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	level := getenv(LogLevelEnv)

	fs := flag.NewFlagSet("splitbill", flag.ContinueOnError)
	if stderr != nil {
		fs.SetOutput(stderr)
	}
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file (default: discard)")
	fs.StringVar(&level, "log-level", level, "minimum log level: debug, info, warn, error")
	fs.BoolVar(&cfg.NoSeed, "no-seed", cfg.NoSeed, "start with an empty friend list")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "run in the terminal's alternate screen")
	fs.StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", cfg.OTLPEndpoint, "OTLP/HTTP endpoint for traces (default: disabled)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: splitbill [flags]\n\n")
		fmt.Fprintf(fs.Output(), "splitbill tracks what you and your friends owe each other\n")
		fmt.Fprintf(fs.Output(), "and splits bills with one friend at a time.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg.LogLevel, err = ParseLevel(level)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
