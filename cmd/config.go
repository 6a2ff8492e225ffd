package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config holds the optional YAML configuration. Flags and environment
// variables take precedence over it.
type config struct {
	DataDir string `yaml:"data-dir"`
	Store   string `yaml:"store"`
}

// configPath returns the config file location, the -config flag or
// $HOME/.jbudget.yaml.
func configPath() string {
	if *configFlag != "" {
		return *configFlag
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jbudget.yaml")
}

// loadConfig reads the config file. A missing or unreadable file yields
// the zero config, a malformed one is reported and ignored.
func loadConfig() config {
	var cfg config
	path := configPath()
	if path == "" {
		return cfg
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		logger.Warn().Str("path", path).Err(err).Msg("ignoring malformed config file")
		return config{}
	}
	return cfg
}
