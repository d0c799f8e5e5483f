// Package config resolves bookmarkgen settings from flags, the environment and env files.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the config directory.
const AppName = "bookmarkgen"

// Dir returns the bookmarkgen configuration directory.
//
// Resolution:
//   - $BOOKMARKGEN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/bookmarkgen if set (respects XDG on any platform)
//   - %AppData%/bookmarkgen on Windows
//   - ~/.config/bookmarkgen on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvPrefix + "CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// EnvFiles lists the env files to load, highest priority first:
// ./.env.local, ./.env, then <Dir()>/env.
func EnvFiles() []string {
	files := []string{".env.local", ".env"}
	if dir := Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}
	return files
}
