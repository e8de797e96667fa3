package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/csg33k/roster-admin/internal/roster"
	"github.com/csg33k/roster-admin/internal/validation"
)

const (
	EnvLocal = "local"
	EnvDev   = "development"
	EnvProd  = "production"

	DriverMemory = "memory"
	DriverSQLite = "sqlite"

	envPrefix = "ROSTER"
)

type Config struct {
	Env    string       // Env is the current environment: local, development, production.
	HTTP   HTTPConfig   // HTTP holds the listener settings.
	Store  StoreConfig  // Store selects the roster data source.
	Roster RosterConfig // Roster holds the screen defaults.
}

// HTTPConfig struct holds the settings of the HTTP server.
type HTTPConfig struct {
	Port            int           // Port is the TCP port to listen on.
	ShutdownTimeout time.Duration // ShutdownTimeout bounds the graceful shutdown.
}

// StoreConfig struct holds the data source settings.
type StoreConfig struct {
	Driver        string // Driver is memory or sqlite.
	MigrationsDir string // MigrationsDir holds the goose migrations for sqlite.
}

// RosterConfig struct holds the defaults of the roster screen.
type RosterConfig struct {
	PageSize        int    // PageSize is the page size restored by Reset.
	Admin           bool   // Admin is the initial state of the admin toggle.
	CorporateDomain string // CorporateDomain is the mail domain new employees must use.
}

// Load reads the optional YAML file named by CONFIG_PATH and applies
// ROSTER_* environment overrides on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", EnvLocal)
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.migrations_dir", "migrations")
	v.SetDefault("roster.page_size", roster.DefaultPageSize)
	v.SetDefault("roster.admin", true)
	v.SetDefault("roster.corporate_domain", validation.DefaultCorporateDomain)

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTP: HTTPConfig{
			Port:            v.GetInt("http.port"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		},
		Store: StoreConfig{
			Driver:        strings.ToLower(v.GetString("store.driver")),
			MigrationsDir: v.GetString("store.migrations_dir"),
		},
		Roster: RosterConfig{
			PageSize:        v.GetInt("roster.page_size"),
			Admin:           v.GetBool("roster.admin"),
			CorporateDomain: v.GetString("roster.corporate_domain"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("config error: " + err.Error())
	}
	return cfg
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port %d is out of range", c.HTTP.Port)
	}
	if !slices.Contains([]string{DriverMemory, DriverSQLite}, c.Store.Driver) {
		return fmt.Errorf("store.driver %q is not one of memory, sqlite", c.Store.Driver)
	}
	if !roster.ValidPageSize(c.Roster.PageSize) {
		return fmt.Errorf("roster.page_size %d is not one of %v", c.Roster.PageSize, roster.PageSizes)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}
