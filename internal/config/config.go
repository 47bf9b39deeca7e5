package config

import (
	"errors"
	"strings"
	"time"

	"github.com/natevvv/campus-navigation/pkg/graph/path"
	"github.com/natevvv/campus-navigation/pkg/routing"
	"github.com/spf13/viper"
)

const EnvPrefix = "CAMPUSNAV"

// Config of the campus navigation tools
type Config struct {
	Registry string        `json:"registry" mapstructure:"registry"`
	Server   ServerConfig  `json:"server" mapstructure:"server"`
	Search   SearchConfig  `json:"search" mapstructure:"search"`
	Routing  RoutingConfig `json:"routing" mapstructure:"routing"`
	Debug    DebugConfig   `json:"debug" mapstructure:"debug"`
}

type ServerConfig struct {
	Port int `json:"port" mapstructure:"port"`
}

type SearchConfig struct {
	MaxExpansions int `json:"maxExpansions" mapstructure:"maxExpansions"`
}

type RoutingConfig struct {
	DeferDelay time.Duration `json:"deferDelay" mapstructure:"deferDelay"`
}

// Debug levels, 0 disables debug output
type DebugConfig struct {
	Search   int `json:"search" mapstructure:"search"`
	Guidance int `json:"guidance" mapstructure:"guidance"`
	Graph    int `json:"graph" mapstructure:"graph"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Registry: "campus.json",
		Server:   ServerConfig{Port: 8081},
		Search:   SearchConfig{MaxExpansions: path.DefaultMaxExpansions},
		Routing:  RoutingConfig{DeferDelay: 0},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("registry", d.Registry)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("search.maxExpansions", d.Search.MaxExpansions)
	v.SetDefault("routing.deferDelay", d.Routing.DeferDelay)
	v.SetDefault("debug.search", d.Debug.Search)
	v.SetDefault("debug.guidance", d.Debug.Guidance)
	v.SetDefault("debug.graph", d.Debug.Graph)
}

// Load the configuration. Without configFile, campusnav.yaml is looked up in the working directory
// and the defaults are used if there is none. Environment variables (CAMPUSNAV_SERVER_PORT, ...) override the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("campusnav")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Registry == "" {
		return &ConfigError{Field: "registry", Message: "no point registry given"}
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port out of range"}
	}
	if c.Search.MaxExpansions < 1 {
		return &ConfigError{Field: "search.maxExpansions", Message: "the search needs a positive budget"}
	}
	if c.Routing.DeferDelay < 0 {
		return &ConfigError{Field: "routing.deferDelay", Message: "negative delay"}
	}
	return nil
}

// Router configuration derived from the configuration
func (c *Config) RouterConfig() routing.Config {
	return routing.Config{
		MaxExpansions:      c.Search.MaxExpansions,
		SearchDebugLevel:   c.Debug.Search,
		GuidanceDebugLevel: c.Debug.Guidance,
		DeferDelay:         c.Routing.DeferDelay,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
