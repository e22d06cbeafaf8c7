package config

import (
	"github.com/spf13/viper"
)

// Config holds the plugin-level settings the host hands to this module.
type Config struct {
	// Master switch; when false the inclusion policy rejects every buffer.
	Enabled  bool   `mapstructure:"enabled"`
	LogLevel string `mapstructure:"log_level"`

	// Project root used to relativize descriptor paths. Empty means
	// "use the host working directory".
	WorkspaceRoot string `mapstructure:"workspace_root"`

	// Directories searched for the plugin install (build version lookup).
	PluginPaths []string `mapstructure:"plugin_paths"`

	// Filetype rules: explicit filetype -> enabled, with "*" as the
	// wildcard default.
	Filetypes map[string]bool `mapstructure:"filetypes"`

	// Optional yaml file with extra filetype -> language id mappings.
	FiletypeOverrides string `mapstructure:"filetype_overrides"`
}

// Load reads configuration from an optional yaml file, applying
// defaults for anything unset. An empty path loads defaults only.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("enabled", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("workspace_root", "")
	v.SetDefault("plugin_paths", []string{})
	v.SetDefault("filetypes", map[string]bool{})
	v.SetDefault("filetype_overrides", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
