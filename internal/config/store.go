package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/muurk/weather/internal/logging"
)

const (
	appID         = "com.muurk.Weather"
	settingsFile  = "config.yaml"
	themeModeFile = "theme-mode.yaml"
	optionsFile   = "options.toml"
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/com.muurk.Weather or $HOME/.config/com.muurk.Weather
//   - macOS: $HOME/.config/com.muurk.Weather (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\com.muurk.Weather
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appID)
		} else {
			baseDir = filepath.Join(localAppData, appID)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appID)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appID)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appID)
		}
	}

	return baseDir, nil
}

// Store reads and writes the settings record and the system theme-mode record.
type Store struct {
	dir string

	// DetectDark is consulted once when no theme-mode record exists.
	// Defaults to asking the terminal for its background color.
	DetectDark func() bool

	mu          sync.Mutex
	lastWritten map[string][]byte

	detectOnce sync.Once
	detected   Theme
}

// NewStore creates a store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{
		dir:         dir,
		DetectDark:  termenv.HasDarkBackground,
		lastWritten: make(map[string][]byte),
	}
}

// OpenDefault creates a store in the platform configuration directory.
func OpenDefault() (*Store, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return NewStore(dir), nil
}

// Dir returns the directory holding the store's files.
func (s *Store) Dir() string {
	return s.dir
}

// SettingsPath returns the full path to the settings file.
func (s *Store) SettingsPath() string {
	return filepath.Join(s.dir, settingsFile)
}

// ThemeModePath returns the full path to the system theme-mode record.
func (s *Store) ThemeModePath() string {
	return filepath.Join(s.dir, themeModeFile)
}

// OptionsPath returns the path LoadOptions reads for this store's directory.
func (s *Store) OptionsPath() string {
	return filepath.Join(s.dir, optionsFile)
}

// LoadSettings reads the settings record.
// A missing file yields DefaultSettings; an unsupported version is an error.
func (s *Store) LoadSettings() (Settings, error) {
	data, err := os.ReadFile(s.SettingsPath())
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseSettings(data)
}

func parseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if settings.Version != CurrentVersion {
		return Settings{}, fmt.Errorf("unsupported config version: %d (expected %d)", settings.Version, CurrentVersion)
	}

	// A partial location is treated as no location.
	if settings.LocationName == nil || settings.Latitude == nil || settings.Longitude == nil {
		settings.LocationName, settings.Latitude, settings.Longitude = nil, nil, nil
	}

	return settings, nil
}

// SaveSettings writes the settings record atomically.
func (s *Store) SaveSettings(settings Settings) error {
	settings.Version = CurrentVersion

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Weather Settings
# Written by the weather application whenever a preference changes.
# Edits made while the application is running are picked up automatically.
#
# units: fahrenheit | celsius
# time_format: 12h | 24h
# theme: light | dark | system

`)
	err = s.writeFile(settingsFile, append(header, data...))
	logging.LogConfigWrite(s.SettingsPath(), err)
	return err
}

// LoadThemeMode returns the system light/dark mode.
// Without a record the terminal background is probed once and the answer reused.
func (s *Store) LoadThemeMode() (Theme, error) {
	data, err := os.ReadFile(s.ThemeModePath())
	if errors.Is(err, os.ErrNotExist) {
		return s.detectedMode(), nil
	}
	if err != nil {
		return Dark, fmt.Errorf("failed to read theme mode: %w", err)
	}

	var record themeModeRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return Dark, fmt.Errorf("failed to parse theme mode: %w", err)
	}
	if record.Mode == System {
		return Dark, fmt.Errorf("invalid theme mode %q", record.Mode)
	}
	return record.Mode, nil
}

// SaveThemeMode records the system light/dark mode.
func (s *Store) SaveThemeMode(mode Theme) error {
	if mode != Light && mode != Dark {
		return fmt.Errorf("invalid theme mode %q (expected light or dark)", mode)
	}

	data, err := yaml.Marshal(themeModeRecord{Mode: mode})
	if err != nil {
		return fmt.Errorf("failed to marshal theme mode: %w", err)
	}
	err = s.writeFile(themeModeFile, data)
	logging.LogConfigWrite(s.ThemeModePath(), err)
	return err
}

// EffectiveTheme resolves System to the current system mode.
func (s *Store) EffectiveTheme(theme Theme) (Theme, error) {
	if theme != System {
		return theme, nil
	}
	return s.LoadThemeMode()
}

// DetectSystemMode runs the terminal background probe now and caches the
// answer. Call it before a full-screen program takes over the terminal;
// later lookups reuse the cached mode.
func (s *Store) DetectSystemMode() Theme {
	return s.detectedMode()
}

// BackupSettings moves an unreadable settings file aside so the next save
// does not overwrite it. It returns the backup path.
func (s *Store) BackupSettings() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.SettingsPath() + ".bak"
	if err := os.Rename(s.SettingsPath(), backup); err != nil {
		return "", fmt.Errorf("failed to back up settings: %w", err)
	}
	delete(s.lastWritten, settingsFile)
	return backup, nil
}

func (s *Store) detectedMode() Theme {
	s.detectOnce.Do(func() {
		s.detected = Dark
		if s.DetectDark != nil && !s.DetectDark() {
			s.detected = Light
		}
	})
	return s.detected
}

// writeFile performs an atomic write of name inside the store directory.
func (s *Store) writeFile(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	s.lastWritten[name] = data
	return nil
}

// wroteLast reports whether data is what this store last wrote to name.
func (s *Store) wroteLast(name string, data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.lastWritten[name]
	return ok && bytes.Equal(last, data)
}
