// Package config provides the configuration directory and settings for symref.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the symref configuration directory.
//
// Resolution:
//   - $SYMREF_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/symref if set (respects XDG on any platform)
//   - %AppData%/symref on Windows
//   - ~/.config/symref on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("SYMREF_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "symref")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "symref")
		}
	}

	// macOS and Linux: ~/.config/symref
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "symref")
}
