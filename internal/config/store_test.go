package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if filepath.Base(configDir) != "com.muurk.Weather" {
		t.Errorf("GetConfigDir() = %v, should end with 'com.muurk.Weather'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	default:
		if configDir != filepath.Join("/tmp/xdg", "com.muurk.Weather") {
			t.Errorf("GetConfigDir() = %v, want XDG_CONFIG_HOME based path", configDir)
		}
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	settings, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if !settings.Equal(DefaultSettings()) {
		t.Errorf("LoadSettings() = %+v, want defaults", settings)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store := NewStore(dir)

	want := DefaultSettings().WithLocation("Denver, CO", "39.74", "-104.99")
	want.Units = Celsius
	want.TimeFormat = TwentyFour
	want.Theme = Dark

	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	info, err := os.Stat(store.SettingsPath())
	if err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("settings file mode = %v, want 0600", info.Mode().Perm())
	}
	if _, err := os.Stat(store.SettingsPath() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after save")
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("LoadSettings() = %+v, want %+v", got, want)
	}
}

func TestSaveSettings_WritesReadableYAML(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.SaveSettings(DefaultSettings()); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	data, err := os.ReadFile(store.SettingsPath())
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{"# Weather Settings", "version: 1", "units: fahrenheit", "time_format: 12h", "theme: system"} {
		if !strings.Contains(content, want) {
			t.Errorf("settings file missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "location_name") {
		t.Error("unset location should be omitted")
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unsupported version", "version: 2\n", "unsupported config version"},
		{"bad units", "version: 1\nunits: kelvin\n", "unknown units"},
		{"bad theme", "version: 1\ntheme: sepia\n", "unknown theme"},
		{"not yaml", "version: [\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(t.TempDir())
			if err := os.WriteFile(store.SettingsPath(), []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := store.LoadSettings()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadSettings() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	store := NewStore(t.TempDir())
	content := "version: 1\nunits: celsius\nlocation_name: Nowhere\n"
	if err := os.WriteFile(store.SettingsPath(), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got.Units != Celsius {
		t.Errorf("Units = %v, want celsius", got.Units)
	}
	if got.Theme != System {
		t.Errorf("Theme = %v, want default system", got.Theme)
	}
	if got.LocationName != nil {
		t.Error("location without coordinates should be dropped")
	}
}

func TestThemeMode(t *testing.T) {
	store := NewStore(t.TempDir())
	probes := 0
	store.DetectDark = func() bool {
		probes++
		return false
	}

	mode, err := store.LoadThemeMode()
	if err != nil {
		t.Fatalf("LoadThemeMode() error = %v", err)
	}
	if mode != Light {
		t.Errorf("LoadThemeMode() = %v, want detected light", mode)
	}
	store.LoadThemeMode()
	if probes != 1 {
		t.Errorf("terminal probed %d times, want 1", probes)
	}

	if err := store.SaveThemeMode(Dark); err != nil {
		t.Fatalf("SaveThemeMode() error = %v", err)
	}
	if mode, _ := store.LoadThemeMode(); mode != Dark {
		t.Errorf("LoadThemeMode() = %v, want dark", mode)
	}

	if err := store.SaveThemeMode(System); err == nil {
		t.Error("SaveThemeMode(System) should fail")
	}
}

func TestEffectiveTheme(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.SaveThemeMode(Light); err != nil {
		t.Fatal(err)
	}

	tests := map[Theme]Theme{Light: Light, Dark: Dark, System: Light}
	for in, want := range tests {
		got, err := store.EffectiveTheme(in)
		if err != nil {
			t.Fatalf("EffectiveTheme(%v) error = %v", in, err)
		}
		if got != want {
			t.Errorf("EffectiveTheme(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestEffectiveTheme_CorruptRecordFallsBackToDark(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := os.WriteFile(store.ThemeModePath(), []byte("mode: purple\n"), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := store.EffectiveTheme(System)
	if err == nil {
		t.Error("EffectiveTheme() should report the unreadable record")
	}
	if got != Dark {
		t.Errorf("EffectiveTheme() = %v, want dark fallback", got)
	}
}

func TestDetectSystemMode_CachesForLaterLookups(t *testing.T) {
	store := NewStore(t.TempDir())
	probes := 0
	store.DetectDark = func() bool {
		probes++
		return true
	}

	if mode := store.DetectSystemMode(); mode != Dark {
		t.Errorf("DetectSystemMode() = %v, want dark", mode)
	}
	for i := 0; i < 3; i++ {
		if mode, err := store.EffectiveTheme(System); err != nil || mode != Dark {
			t.Errorf("EffectiveTheme(System) = %v, %v", mode, err)
		}
	}
	if probes != 1 {
		t.Errorf("terminal probed %d times, want 1", probes)
	}
}

func TestBackupSettings(t *testing.T) {
	store := NewStore(t.TempDir())
	bad := []byte("version: 7\nunits: kelvin\n")
	if err := os.WriteFile(store.SettingsPath(), bad, 0600); err != nil {
		t.Fatal(err)
	}

	backup, err := store.BackupSettings()
	if err != nil {
		t.Fatalf("BackupSettings() error = %v", err)
	}
	if backup != store.SettingsPath()+".bak" {
		t.Errorf("backup path = %q", backup)
	}
	data, err := os.ReadFile(backup)
	if err != nil || string(data) != string(bad) {
		t.Errorf("backup content = %q, %v", data, err)
	}
	if _, err := os.Stat(store.SettingsPath()); !os.IsNotExist(err) {
		t.Errorf("settings file should be moved aside, stat err = %v", err)
	}

	if err := store.SaveSettings(DefaultSettings()); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(backup); string(data) != string(bad) {
		t.Error("saving must not touch the backup")
	}

	if _, err := os.Stat(store.SettingsPath()); err != nil {
		t.Fatal(err)
	}
	os.Remove(store.SettingsPath())
	if _, err := store.BackupSettings(); err == nil {
		t.Error("BackupSettings() without a file should fail")
	}
}
