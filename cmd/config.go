package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when a variable is unset or empty.
const (
	DefaultHTTPPort         = "8080"
	DefaultLogLevel         = "info"
	DefaultSnapshotSchedule = "@every 30s"
	DefaultShutdownTimeout  = 10 * time.Second
)

type Config struct {
	HTTPPort         string
	LogLevel         string
	StrictNotFound   bool
	SnapshotSchedule string
	ShutdownTimeout  time.Duration
}

// LoadDotEnv loads variables from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(filenames ...string) error {
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// ConfigFromEnv builds a Config from the process environment.
func ConfigFromEnv() (Config, error) {
	return ConfigFromLookup(os.LookupEnv)
}

// ConfigFromLookup builds a Config using lookup to read variables.
func ConfigFromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	config := Config{
		HTTPPort:         get("HTTP_PORT", DefaultHTTPPort),
		LogLevel:         get("LOG_LEVEL", DefaultLogLevel),
		SnapshotSchedule: get("SNAPSHOT_SCHEDULE", DefaultSnapshotSchedule),
	}

	var errs []error

	if _, err := strconv.ParseUint(config.HTTPPort, 10, 16); err != nil {
		errs = append(errs, fmt.Errorf("HTTP_PORT: %q is not a port number", config.HTTPPort))
	}

	strict, err := strconv.ParseBool(get("HTTP_STRICT_NOT_FOUND", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("HTTP_STRICT_NOT_FOUND: %w", err))
	}
	config.StrictNotFound = strict

	timeout, err := time.ParseDuration(get("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout.String()))
	if err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	} else if timeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: must be positive, got %s", timeout))
	}
	config.ShutdownTimeout = timeout

	if err = errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return config, nil
}
