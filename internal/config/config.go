// Package config builds the process-wide configuration for eventperf.
// Values come from an optional .env file, then the environment, then flags;
// later sources win. The resulting Config is passed down explicitly.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultServiceName is the OpenTelemetry service name when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "eventperf"

// Environment variable names.
const (
	EnvBackendURL     = "EVENTPERF_BACKEND_URL"
	EnvLegacyBackend  = "VITE_BACKEND_URL" // accepted so an existing front-end .env keeps working
	EnvTimeout        = "EVENTPERF_TIMEOUT"
	EnvLogFile        = "EVENTPERF_LOG_FILE"
	EnvDebug          = "EVENTPERF_DEBUG"
	EnvOTLPEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvOTELService    = "OTEL_SERVICE_NAME"
	EnvDisableAltScrn = "EVENTPERF_NO_ALT_SCREEN"
)

// Config holds everything the binary needs at start-up.
type Config struct {
	// BackendURL is prefixed to every API path. Empty means relative paths.
	BackendURL string
	// Timeout bounds each HTTP request. Zero disables the timeout.
	Timeout time.Duration

	LogFile string
	Debug   bool

	// OTLPEndpoint enables trace export when non-empty.
	OTLPEndpoint string
	ServiceName  string

	AltScreen bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		ServiceName: DefaultServiceName,
		AltScreen:   true,
	}
}

// LoadDotEnv loads the given env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// FromEnv returns Default overlaid with values from the environment.
func FromEnv() (Config, error) {
	cfg := Default()

	cfg.BackendURL = os.Getenv(EnvBackendURL)
	if cfg.BackendURL == "" {
		cfg.BackendURL = os.Getenv(EnvLegacyBackend)
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	cfg.LogFile = os.Getenv(EnvLogFile)
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = b
	}
	cfg.OTLPEndpoint = os.Getenv(EnvOTLPEndpoint)
	if v := os.Getenv(EnvOTELService); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv(EnvDisableAltScrn); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			cfg.AltScreen = false
		}
	}
	return cfg, nil
}

// RegisterFlags binds cfg fields to fs using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.BackendURL, "backend-url", c.BackendURL, "base URL of the attendance API (empty = relative paths)")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "per-request timeout (0 = none)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file (logs are discarded when empty)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.StringVar(&c.OTLPEndpoint, "otlp-endpoint", c.OTLPEndpoint, "OTLP/HTTP trace endpoint (disabled when empty)")
	fs.StringVar(&c.ServiceName, "service-name", c.ServiceName, "service name reported with traces")
	fs.BoolVar(&c.AltScreen, "alt-screen", c.AltScreen, "run in the terminal's alternate screen")
}

// Validate reports configuration that can never work.
func (c Config) Validate() error {
	if c.BackendURL != "" {
		u, err := url.Parse(c.BackendURL)
		if err != nil {
			return fmt.Errorf("backend url %q: %w", c.BackendURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("backend url %q: scheme must be http or https", c.BackendURL)
		}
		if u.Host == "" {
			return fmt.Errorf("backend url %q: missing host", c.BackendURL)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// Load runs the full pipeline: env files, environment, flags, validation.
// Usage output for -h goes to out; flag.ErrHelp is returned unchanged.
func Load(args []string, out io.Writer, envFiles ...string) (Config, error) {
	if err := LoadDotEnv(envFiles...); err != nil {
		return Config{}, err
	}
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("eventperf", flag.ContinueOnError)
	fs.SetOutput(out)
	cfg.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: eventperf [flags]\n\n")
		fmt.Fprintf(out, "Browse students by academic year and branch and view their event attendance.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
