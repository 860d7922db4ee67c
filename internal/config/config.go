// Package config manages envsync configuration from files and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Environment maps one named environment to its local file and the remote
// target identifier the platform CLI understands.
type Environment struct {
	// File is the dotenv file holding the desired state.
	File string `mapstructure:"file"`

	// Target is the platform-side environment identifier.
	Target string `mapstructure:"target"`
}

// Config holds envsync configuration.
type Config struct {
	// Platform selects the remote provider. Defaults to "vercel".
	Platform string `mapstructure:"platform"`

	// Include restricts the sync to names matching these patterns.
	// Empty means every name participates.
	Include []string `mapstructure:"include"`

	// Exclude removes matching names from the sync after Include.
	Exclude []string `mapstructure:"exclude"`

	// Protected adds user patterns to the builtin and platform-owned
	// protection lists.
	Protected []string `mapstructure:"protected"`

	// Environments maps environment names to their file/target pair.
	// The standard three are filled in when the user omits them.
	Environments map[string]Environment `mapstructure:"environments"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Platform:     "vercel",
		Include:      nil,
		Exclude:      nil,
		Protected:    nil,
		Environments: defaultEnvironments(),
	}
}

func defaultEnvironments() map[string]Environment {
	return map[string]Environment{
		"development": {File: ".env.development", Target: "development"},
		"preview":     {File: ".env.preview", Target: "preview"},
		"production":  {File: ".env.production", Target: "production"},
	}
}

// Load reads configuration from file and environment variables.
// Configuration is loaded from (in order of precedence):
//  1. Environment variables (ENVSYNC_*)
//  2. Config file ($XDG_CONFIG_HOME/envsync/config.toml or ~/.config/envsync/config.toml)
//  3. Default values
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("platform", "vercel")
	v.SetDefault("include", []string{})
	v.SetDefault("exclude", []string{})
	v.SetDefault("protected", []string{})

	v.SetConfigName("config")
	v.SetConfigType("toml")

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		v.AddConfigPath(filepath.Join(xdgConfig, "envsync"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "envsync"))
	}

	v.SetEnvPrefix("ENVSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return merge(cfg), nil
}

// merge layers user values over the defaults, producing the one immutable
// Config used for the rest of the run. User-defined environments are kept
// as-is; the standard three are filled in only when absent.
func merge(user *Config) *Config {
	cfg := Default()

	if user.Platform != "" {
		cfg.Platform = user.Platform
	}
	if len(user.Include) > 0 {
		cfg.Include = user.Include
	}
	if len(user.Exclude) > 0 {
		cfg.Exclude = user.Exclude
	}
	if len(user.Protected) > 0 {
		cfg.Protected = user.Protected
	}
	for name, env := range user.Environments {
		cfg.Environments[name] = env
	}

	return cfg
}

// ConfigFile returns the path to the config file that was loaded, or empty if none.
func ConfigFile() string {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		v.AddConfigPath(filepath.Join(xdgConfig, "envsync"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "envsync"))
	}

	if err := v.ReadInConfig(); err != nil {
		return ""
	}

	return v.ConfigFileUsed()
}

// Environment looks up a named environment. Referencing an unknown name is
// a configuration error and aborts before any remote interaction.
func (c *Config) Environment(name string) (Environment, error) {
	env, ok := c.Environments[name]
	if !ok {
		return Environment{}, fmt.Errorf("unknown environment %q (configured: %s)", name, strings.Join(c.EnvironmentNames(), ", "))
	}
	if env.File == "" || env.Target == "" {
		return Environment{}, fmt.Errorf("environment %q must set both file and target", name)
	}
	return env, nil
}

// EnvironmentNames returns the configured environment names, sorted.
func (c *Config) EnvironmentNames() []string {
	names := make([]string, 0, len(c.Environments))
	for name := range c.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
