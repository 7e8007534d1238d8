// Package config loads the optional pulsedeploy.yml project file.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigFile is the project configuration file name.
const ConfigFile = "pulsedeploy.yml"

// Defaults matching the original deploy scripts.
const (
	DefaultDashboardDir   = "dashboard"
	DefaultServerDir      = "server"
	DefaultBuildDir       = "build"
	DefaultMinNodeVersion = "18.0.0"
	DefaultAPIBaseURL     = "https://api.pulsecheck.app"
	DefaultArchivePrefix  = "pulsecheck-dashboard"
)

// Config holds project-level settings. Every field has a compiled-in
// default; the config file only overrides.
type Config struct {
	DashboardDir   string        `mapstructure:"dashboardDir"`
	ServerDir      string        `mapstructure:"serverDir"`
	BuildDir       string        `mapstructure:"buildDir"`
	MinNodeVersion string        `mapstructure:"minNodeVersion"`
	ArchivePrefix  string        `mapstructure:"archivePrefix"`
	Netlify        NetlifyConfig `mapstructure:"netlify"`
	Env            EnvConfig     `mapstructure:"env"`
}

// NetlifyConfig contains hosting provider settings.
type NetlifyConfig struct {
	SiteID string `mapstructure:"siteId"`
}

// EnvConfig contains the values scaffolded into the dashboard env files.
type EnvConfig struct {
	APIBaseURL string `mapstructure:"apiBaseUrl"`
}

// BuildPath is the dashboard build output directory, relative to the
// project root.
func (c *Config) BuildPath() string {
	return filepath.Join(c.DashboardDir, c.BuildDir)
}

// Load reads pulsedeploy.yml from dir. A missing file is not an error;
// defaults apply.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("pulsedeploy")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("dashboardDir", DefaultDashboardDir)
	v.SetDefault("serverDir", DefaultServerDir)
	v.SetDefault("buildDir", DefaultBuildDir)
	v.SetDefault("minNodeVersion", DefaultMinNodeVersion)
	v.SetDefault("archivePrefix", DefaultArchivePrefix)
	v.SetDefault("env.apiBaseUrl", DefaultAPIBaseURL)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("invalid config format: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return &cfg, nil
}
