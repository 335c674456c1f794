// Package config provides configuration management for bsui using Viper
// for loading from files, environment variables, and command-line flags.
//
// The configuration system supports YAML files, environment variable
// overrides with the BSUI_ prefix, and validation. It covers the preview
// server, logging, the component configuration bags and the search index.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/conneroisu/bsui/internal/errors"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "BSUI"

type Config struct {
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Components ComponentsConfig `mapstructure:"components" yaml:"components"`
	Search     SearchConfig     `mapstructure:"search" yaml:"search"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host" validate:"omitempty,hostname_rfc1123|ip"`
	Port int    `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

type ComponentsConfig struct {
	// ConfigFile is an optional YAML file mapping component names to bags.
	ConfigFile string `mapstructure:"config_file" yaml:"config_file"`
	// Defaults are inline bags layered over the file.
	Defaults map[string]map[string]interface{} `mapstructure:"defaults" yaml:"defaults"`
}

type SearchConfig struct {
	ContentRoot         string        `mapstructure:"content_root" yaml:"content_root" validate:"required"`
	Extensions          []string      `mapstructure:"extensions" yaml:"extensions" validate:"dive,startswith=."`
	ExcludeDirs         []string      `mapstructure:"exclude_dirs" yaml:"exclude_dirs"`
	IgnoreMarker        string        `mapstructure:"ignore_marker" yaml:"ignore_marker"`
	InternalRoutePrefix string        `mapstructure:"internal_route_prefix" yaml:"internal_route_prefix"`
	DefaultLimit        int           `mapstructure:"default_limit" yaml:"default_limit" validate:"gt=0,lte=1000"`
	CacheSize           int           `mapstructure:"cache_size" yaml:"cache_size" validate:"gte=0"`
	Routes              []RouteConfig `mapstructure:"routes" yaml:"routes" validate:"dive"`
	Pages               []PageConfig  `mapstructure:"pages" yaml:"pages" validate:"dive"`
}

// RouteConfig declares a host application route for the search index.
type RouteConfig struct {
	Name string `mapstructure:"name" yaml:"name" validate:"required"`
	Path string `mapstructure:"path" yaml:"path" validate:"required,url_path"`
}

// PageConfig declares a static page for the search index.
type PageConfig struct {
	Title       string   `mapstructure:"title" yaml:"title" validate:"required"`
	Description string   `mapstructure:"description" yaml:"description,omitempty"`
	URL         string   `mapstructure:"url" yaml:"url" validate:"required,url_path"`
	Type        string   `mapstructure:"type" yaml:"type,omitempty"`
	Keywords    []string `mapstructure:"keywords" yaml:"keywords,omitempty"`
}

// Default values.
var (
	DefaultExtensions  = []string{".html", ".tmpl", ".gohtml", ".templ", ".twig"}
	DefaultExcludeDirs = []string{"bundles", "form", "emails", "partials", "layouts"}
)

const (
	DefaultHost                = "localhost"
	DefaultPort                = 8080
	DefaultContentRoot         = "./templates"
	DefaultIgnoreMarker        = ".searchignore"
	DefaultInternalRoutePrefix = "_"
	DefaultSearchLimit         = 20
	DefaultCacheSize           = 256
)

// SetDefaults registers defaults on v so environment overrides bind to
// every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("components.config_file", "")
	v.SetDefault("search.content_root", DefaultContentRoot)
	v.SetDefault("search.extensions", DefaultExtensions)
	v.SetDefault("search.exclude_dirs", DefaultExcludeDirs)
	v.SetDefault("search.ignore_marker", DefaultIgnoreMarker)
	v.SetDefault("search.internal_route_prefix", DefaultInternalRoutePrefix)
	v.SetDefault("search.default_limit", DefaultSearchLimit)
	v.SetDefault("search.cache_size", DefaultCacheSize)
}

// ConfigureEnv enables BSUI_ environment overrides on v.
func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals the global viper state, fills unset values with defaults
// and validates the result.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigRead, "cannot decode configuration", err)
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Host == "" {
		config.Server.Host = DefaultHost
	}
	if !viper.IsSet("server.port") && config.Server.Port == 0 {
		config.Server.Port = DefaultPort
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	config.Log.Level = strings.ToLower(config.Log.Level)
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	// Handle slices set as comma separated env values
	if viper.IsSet("search.extensions") && len(config.Search.Extensions) == 0 {
		config.Search.Extensions = viper.GetStringSlice("search.extensions")
	}
	if viper.IsSet("search.exclude_dirs") && len(config.Search.ExcludeDirs) == 0 {
		config.Search.ExcludeDirs = viper.GetStringSlice("search.exclude_dirs")
	}

	if config.Search.ContentRoot == "" {
		config.Search.ContentRoot = DefaultContentRoot
	}
	if !viper.IsSet("search.extensions") && len(config.Search.Extensions) == 0 {
		config.Search.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if !viper.IsSet("search.exclude_dirs") && len(config.Search.ExcludeDirs) == 0 {
		config.Search.ExcludeDirs = append([]string(nil), DefaultExcludeDirs...)
	}
	if config.Search.IgnoreMarker == "" {
		config.Search.IgnoreMarker = DefaultIgnoreMarker
	}
	if !viper.IsSet("search.internal_route_prefix") && config.Search.InternalRoutePrefix == "" {
		config.Search.InternalRoutePrefix = DefaultInternalRoutePrefix
	}
	if config.Search.DefaultLimit == 0 {
		config.Search.DefaultLimit = DefaultSearchLimit
	}
	if !viper.IsSet("search.cache_size") && config.Search.CacheSize == 0 {
		config.Search.CacheSize = DefaultCacheSize
	}
	for i := range config.Search.Pages {
		if config.Search.Pages[i].Type == "" {
			config.Search.Pages[i].Type = "page"
		}
	}
}
