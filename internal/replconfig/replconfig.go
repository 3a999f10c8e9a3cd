// Package replconfig loads user REPL preferences (prompt text, color,
// history file location) from a YAML config file.
package replconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the user-facing REPL settings.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in REPL configuration used when no config
// file is present.
func Default() Config {
	home, _ := os.UserHomeDir()
	history := ".basil_history"
	if home != "" {
		history = home + "/.basil_history"
	}
	return Config{
		Prompt:      "basil> ",
		Color:       true,
		HistoryFile: history,
	}
}

// Load reads a YAML config file at path, falling back to Default for
// any field the file omits. A missing file is not an error: Load
// returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
