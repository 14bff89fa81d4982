// Package config resolves runtime configuration from environment variables
// with defaults. CLI flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"veo_builder/internal/chunk"
	"veo_builder/internal/workspace"
)

const (
	DefaultPort     = 8791
	DefaultLogLevel = "info"

	EnvDataDir      = "VSB_DATA_DIR"
	EnvLogLevel     = "VSB_LOG_LEVEL"
	EnvWordsPerClip = "VSB_WORDS_PER_CLIP"
	EnvPort         = "VSB_PORT"
	EnvExportPrefix = "VSB_EXPORT_PREFIX"
)

type Config struct {
	DataDir      string
	LogLevel     string
	WordsPerClip int
	Port         int
	ExportPrefix string
}

func New() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an env-style lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		DataDir:      defaultDataDir(),
		LogLevel:     DefaultLogLevel,
		WordsPerClip: chunk.DefaultWordsPerClip,
		Port:         DefaultPort,
		ExportPrefix: workspace.DefaultExportPrefix,
	}

	if v, ok := lookup(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvWordsPerClip); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvWordsPerClip, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid %s: must be at least 1", EnvWordsPerClip)
		}
		cfg.WordsPerClip = n
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid %s: port must be between 1 and 65535", EnvPort)
		}
		cfg.Port = port
	}
	if v, ok := lookup(EnvExportPrefix); ok && v != "" {
		cfg.ExportPrefix = v
	}

	return cfg, nil
}

func (c *Config) HistoryDBPath() string {
	return workspace.HistoryDBPath(c.DataDir)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return workspace.BaseDirName
	}
	return filepath.Join(home, workspace.BaseDirName)
}

// Version is overridden at build time via ldflags.
var Version = "0.1.0"
