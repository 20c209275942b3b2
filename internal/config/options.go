package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/muurk/weather/internal/urls"
	"github.com/muurk/weather/internal/version"
)

// DefaultFallbackCity is resolved at startup when no location has been chosen yet.
const DefaultFallbackCity = "Denver"

// Options holds runtime knobs that are not user preferences.
type Options struct {
	GeocodingURL string        `mapstructure:"geocoding_url"`
	ForecastURL  string        `mapstructure:"forecast_url"`
	UserAgent    string        `mapstructure:"user_agent"`
	Timeout      time.Duration `mapstructure:"timeout"`
	FallbackCity string        `mapstructure:"fallback_city"`
	LogLevel     string        `mapstructure:"log_level"`
	LogFile      string        `mapstructure:"log_file"`
}

// LoadOptions reads options from defaults, an optional options.toml in dir,
// an optional .env in the working directory and WEATHER_* environment variables.
// Environment variables take precedence over the file.
func LoadOptions(dir string) (Options, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Options{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("geocoding_url", urls.GeocodingAPI)
	v.SetDefault("forecast_url", urls.ForecastAPI)
	v.SetDefault("user_agent", fmt.Sprintf("weather/%s (+%s)", version.Version, urls.Repository))
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("fallback_city", DefaultFallbackCity)
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", defaultLogFile())

	v.SetConfigType("toml")
	if dir != "" {
		v.SetConfigFile(filepath.Join(dir, optionsFile))
	}

	v.SetEnvPrefix("WEATHER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if dir != "" {
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Options{}, fmt.Errorf("read %s: %w", optionsFile, err)
		}
	}

	var o Options
	if err := v.Unmarshal(&o); err != nil {
		return Options{}, fmt.Errorf("unmarshal options: %w", err)
	}

	if o.Timeout <= 0 {
		return Options{}, fmt.Errorf("invalid timeout %s", o.Timeout)
	}
	if strings.TrimSpace(o.FallbackCity) == "" {
		o.FallbackCity = DefaultFallbackCity
	}
	return o, nil
}

// defaultLogFile places the log next to other per-user caches.
func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appID, "weather.log")
}
