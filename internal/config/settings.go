package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds user configuration loaded from config.yaml in the symref
// config directory. Zero values mean "use the built-in default"; flags
// always override file values.
type Settings struct {
	// Python is the interpreter executable used to inspect packages.
	Python string `yaml:"python,omitempty"`
	// IncludeUndocumented lists top-level functions without docstrings.
	IncludeUndocumented bool `yaml:"include_undocumented,omitempty"`
	// OutputDir is prepended to relative default output paths.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// Load reads Settings from config.yaml in the config directory.
// A missing file yields zero Settings; a malformed file is an error.
func Load() (Settings, error) {
	dir := Dir()
	if dir == "" {
		return Settings{}, nil
	}
	return loadFile(filepath.Join(dir, "config.yaml"))
}

// loadFile reads and parses one settings file.
func loadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return settings, nil
}
