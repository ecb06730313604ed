package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	internal "github.com/ZanzyTHEbar/surfapi-go/surf"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Library LibraryConfig `mapstructure:"library"`
	Log     LogConfig     `mapstructure:"log"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Scan    ScanConfig    `mapstructure:"scan"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// LibraryConfig locates the vendor library. An empty path falls back to
// SURFAPI_LIBRARY and the platform search path.
type LibraryConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

type ScanConfig struct {
	Extensions []string `mapstructure:"extensions"`
	IgnoreFile string   `mapstructure:"ignoreFile"`
	Recursive  bool     `mapstructure:"recursive"`
}

// CatalogConfig stores the catalog database connection details.
type CatalogConfig struct {
	DSN string `mapstructure:"dsn"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
	MaxDelay time.Duration `mapstructure:"maxDelay"`
}

// LoadConfig reads configuration from file or environment variables.
// An explicit configPath must exist; otherwise a missing file means defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix(internal.DefaultEnvPrefix)
	v.AutomaticEnv()
	// library.path becomes SURFLOAD_LIBRARY_PATH
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("library.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("batch.workers", runtime.NumCPU())
	v.SetDefault("scan.extensions", internal.DefaultExtensions)
	v.SetDefault("scan.ignoreFile", internal.DefaultIgnoreFile)
	v.SetDefault("scan.recursive", true)
	v.SetDefault("catalog.dsn", internal.DefaultCatalogDSN)
	v.SetDefault("watch.debounce", 500*time.Millisecond)
	v.SetDefault("watch.maxDelay", 5*time.Second)
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must not be empty")
	}
	if c.Catalog.DSN == "" {
		return errors.New("catalog.dsn must not be empty")
	}
	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive, got %s", c.Watch.Debounce)
	}
	if c.Watch.MaxDelay < c.Watch.Debounce {
		return fmt.Errorf("watch.maxDelay %s is shorter than watch.debounce %s", c.Watch.MaxDelay, c.Watch.Debounce)
	}
	return nil
}
