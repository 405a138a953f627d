package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the demo's settings, loaded from a TOML file.
type Config struct {
	// LogLevel is the minimum level to log (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// LogFile receives log output. Empty disables logging, since the
	// terminal itself is occupied by the UI.
	LogFile string `toml:"log_file"`

	// KeymapPath is the keymap JSON file. A default keymap is written
	// there when the file does not exist.
	KeymapPath string `toml:"keymap"`

	// QuitKey always quits, regardless of the active state.
	QuitKey string `toml:"quit_key"`

	// Windows titles to open at startup.
	Windows []string `toml:"windows"`

	// LiveReload re-applies the keymap when its file changes.
	LiveReload bool `toml:"live_reload"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:   "info",
		KeymapPath: "keyscope-demo.json",
		QuitKey:    "Ctrl+Q",
		Windows:    []string{"scratch", "log"},
		LiveReload: true,
	}
}

// loadConfig reads a TOML config file, returning defaults when the file
// does not exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
