// Package config resolves the bridge configuration from the config file and
// SCHOOLOGY_* environment variables, the environment taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName     = "config"
	configType     = "toml"
	configDirName  = "sgy"
	configFileName = "config.toml"

	defaultBrowser        = "chrome"
	defaultTimeoutSeconds = 30
	defaultLogLevel       = "info"

	coursesPath  = "/iapi2/site-navigation/courses"
	upcomingPath = "/home/upcoming_submissions_ajax"
)

var ErrMissingBaseURL = errors.New("base_url is required")

type Config struct {
	BaseURL          string
	Cookie           string
	Browser          string
	CoursesEndpoint  string
	UpcomingEndpoint string
	Timeout          time.Duration
	LogLevel         string
}

func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if configDir, err := defaultConfigDir(); err == nil {
		v.AddConfigPath(configDir)
	}

	v.SetDefault("browser", defaultBrowser)
	v.SetDefault("timeout_seconds", defaultTimeoutSeconds)
	v.SetDefault("log_level", defaultLogLevel)

	bindings := map[string]string{
		"base_url":          "SCHOOLOGY_BASE_URL",
		"cookie":            "SCHOOLOGY_COOKIE",
		"browser":           "SCHOOLOGY_BROWSER",
		"courses_endpoint":  "SCHOOLOGY_COURSES_ENDPOINT",
		"upcoming_endpoint": "SCHOOLOGY_UPCOMING_ENDPOINT",
		"timeout_seconds":   "SCHOOLOGY_TIMEOUT_SECONDS",
		"log_level":         "SCHOOLOGY_LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		BaseURL:          strings.TrimSpace(v.GetString("base_url")),
		Cookie:           strings.TrimSpace(v.GetString("cookie")),
		Browser:          strings.TrimSpace(v.GetString("browser")),
		CoursesEndpoint:  strings.TrimSpace(v.GetString("courses_endpoint")),
		UpcomingEndpoint: strings.TrimSpace(v.GetString("upcoming_endpoint")),
		Timeout:          time.Duration(v.GetInt("timeout_seconds")) * time.Second,
		LogLevel:         strings.TrimSpace(v.GetString("log_level")),
	}
	cfg.applyEndpointDefaults()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Host strips the scheme off the configured base URL, accepting either
// "district.schoology.com" or "https://district.schoology.com".
func (c Config) Host() string {
	host := strings.TrimPrefix(c.BaseURL, "https://")
	host = strings.TrimPrefix(host, "http://")

	return strings.Trim(host, "/")
}

func (c *Config) applyEndpointDefaults() {
	host := c.Host()
	if host == "" {
		return
	}

	if c.CoursesEndpoint == "" {
		c.CoursesEndpoint = "https://" + host + coursesPath
	}
	if c.UpcomingEndpoint == "" {
		c.UpcomingEndpoint = "https://" + host + upcomingPath
	}
}

func (c Config) validate() error {
	if c.BaseURL == "" && (c.CoursesEndpoint == "" || c.UpcomingEndpoint == "") {
		return fmt.Errorf("%w: set SCHOOLOGY_BASE_URL (or base_url in the config file) to <your-district>.schoology.com", ErrMissingBaseURL)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout_seconds must be positive")
	}

	return nil
}

func defaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", configDirName), nil
}
