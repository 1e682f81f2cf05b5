package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

// fileSchema mirrors the on-disk TOML layout. The cookie field may hold a
// live session credential, so config files are written mode 0600.
type fileSchema struct {
	BaseURL          string `toml:"base_url"`
	Cookie           string `toml:"cookie,omitempty"`
	Browser          string `toml:"browser"`
	CoursesEndpoint  string `toml:"courses_endpoint,omitempty"`
	UpcomingEndpoint string `toml:"upcoming_endpoint,omitempty"`
	TimeoutSeconds   int    `toml:"timeout_seconds"`
	LogLevel         string `toml:"log_level"`
}

// DefaultPath returns where Load looks for the config file.
func DefaultPath() (string, error) {
	configDir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, configFileName), nil
}

// WriteStarter writes a config file seeded with defaults for the operator to
// fill in. It refuses to overwrite an existing file unless force is set.
func WriteStarter(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, configFileMode); err != nil {
		return fmt.Errorf("chmod config file: %w", err)
	}

	return nil
}

func toSchema(cfg Config) fileSchema {
	schema := fileSchema{
		BaseURL:          cfg.BaseURL,
		Cookie:           cfg.Cookie,
		Browser:          cfg.Browser,
		CoursesEndpoint:  cfg.CoursesEndpoint,
		UpcomingEndpoint: cfg.UpcomingEndpoint,
		TimeoutSeconds:   int(cfg.Timeout / time.Second),
		LogLevel:         cfg.LogLevel,
	}

	if schema.Browser == "" {
		schema.Browser = defaultBrowser
	}
	if schema.TimeoutSeconds <= 0 {
		schema.TimeoutSeconds = defaultTimeoutSeconds
	}
	if schema.LogLevel == "" {
		schema.LogLevel = defaultLogLevel
	}

	return schema
}
