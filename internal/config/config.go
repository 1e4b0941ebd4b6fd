// Package config resolves patternshell settings from defaults, an optional
// config file, a .env file, PATTERNS_* environment variables, and CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable viper consults.
const EnvPrefix = "PATTERNS"

// Keys understood by Load. Flags bound with viper.BindPFlag use the same names.
const (
	KeyLogLevel   = "log-level"
	KeyLogFile    = "log-file"
	KeyTestMode   = "test-mode"
	KeyPlain      = "plain"
	KeyJSON       = "json"
	KeyTheme      = "theme"
	KeyMinVersion = "min-version"
	KeyStepDelay  = "facade.step_delay"
	KeyProxyDelay = "proxy.delay"
)

// Config is the resolved set of settings.
type Config struct {
	LogLevel   string
	LogFile    string
	TestMode   bool
	Plain      bool
	JSON       bool
	Theme      string
	MinVersion string
	StepDelay  time.Duration
	ProxyDelay time.Duration
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTestMode, false)
	v.SetDefault(KeyPlain, false)
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyMinVersion, "")
	v.SetDefault(KeyStepDelay, 200*time.Millisecond)
	v.SetDefault(KeyProxyDelay, 2*time.Second)
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// A missing file is not an error. Variables already set are left alone.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load resolves settings into a Config. configFile may be empty, in which case
// patterns.yaml is looked up in the working directory and ignored if absent.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("patterns")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:   v.GetString(KeyLogLevel),
		LogFile:    v.GetString(KeyLogFile),
		TestMode:   v.GetBool(KeyTestMode),
		Plain:      v.GetBool(KeyPlain),
		JSON:       v.GetBool(KeyJSON),
		Theme:      v.GetString(KeyTheme),
		MinVersion: v.GetString(KeyMinVersion),
		StepDelay:  v.GetDuration(KeyStepDelay),
		ProxyDelay: v.GetDuration(KeyProxyDelay),
	}

	if cfg.TestMode {
		cfg.ApplyTestMode()
	}

	if cfg.StepDelay < 0 || cfg.ProxyDelay < 0 {
		return nil, fmt.Errorf("delays must not be negative (step %s, proxy %s)", cfg.StepDelay, cfg.ProxyDelay)
	}

	return cfg, nil
}

// ApplyTestMode makes runs deterministic: no delays and no styling.
func (c *Config) ApplyTestMode() {
	c.TestMode = true
	c.Plain = true
	c.StepDelay = 0
	c.ProxyDelay = 0
}
