package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	// DefaultBackendURL is where the query backend listens by default
	DefaultBackendURL = "http://localhost:8000"

	envPrefix      = "EXOQUERY"
	configFileName = ".exoquery"
)

// Config holds client settings
type Config struct {
	BackendURL string        `mapstructure:"backend_url" yaml:"backend_url"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Locale     string        `mapstructure:"locale" yaml:"locale"`
	NoColor    bool          `mapstructure:"no_color" yaml:"no_color"`

	// File is the config file that was read, if any
	File string `mapstructure:"-" yaml:"-"`
}

// flag name -> config key
var configFlags = map[string]string{
	"backend":  "backend_url",
	"timeout":  "timeout",
	"locale":   "locale",
	"no-color": "no_color",
}

// LoadConfig reads configuration from, highest priority first: changed
// flags in fs, EXOQUERY_* environment variables, the config file at path
// (or $HOME/.exoquery.yaml when path is empty) and built-in defaults.
// A missing default config file is not an error; a missing explicit one is.
func LoadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setConfigDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range configFlags {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		LogDebug("no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if used := v.ConfigFileUsed(); used != "" {
		cfg.File = filepath.Clean(used)
		LogDebug("config loaded from %s", cfg.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("backend_url", DefaultBackendURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("locale", "en")
	v.SetDefault("no_color", false)
}

// Validate checks that the settings are usable
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return errors.New("backend_url must not be empty")
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid backend_url %q: %w", c.BackendURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend_url %q: scheme must be http or https", c.BackendURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid backend_url %q: missing host", c.BackendURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if _, err := c.LanguageTag(); err != nil {
		return err
	}
	return nil
}

// LanguageTag parses the configured locale
func (c *Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// NewClient builds a backend client from the settings
func (c *Config) NewClient() *Client {
	return NewClient(c.BackendURL, WithTimeout(c.Timeout))
}
