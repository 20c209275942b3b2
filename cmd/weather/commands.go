package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/weather/internal/app"
	"github.com/muurk/weather/internal/config"
	"github.com/muurk/weather/internal/location"
	"github.com/muurk/weather/internal/logging"
	"github.com/muurk/weather/internal/remote"
	"github.com/muurk/weather/internal/tui"
	"github.com/muurk/weather/internal/ui"
	"github.com/muurk/weather/internal/weather"
)

// Command flags
var (
	lookupSave bool
	showPlace  string
	showHours  int
	showDays   int
)

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)

	lookupCmd.Flags().BoolVar(&lookupSave, "save", false, "Save the best match as the current location")

	showCmd.Flags().StringVar(&showPlace, "place", "", "Place to show instead of the saved location")
	showCmd.Flags().IntVar(&showHours, "hours", 6, "Number of hourly rows (0 = all)")
	showCmd.Flags().IntVar(&showDays, "days", 7, "Number of daily rows (0 = all)")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

// environment bundles what every command needs after startup
type environment struct {
	opts     config.Options
	store    *config.Store
	settings config.Settings
	resolver *location.Client
	provider *weather.Client
}

// setup loads options, starts logging and opens the store. Interactive runs
// log to a file because the terminal belongs to the renderer.
func setup(interactive bool) (*environment, error) {
	var store *config.Store
	if configDir != "" {
		store = config.NewStore(configDir)
	} else {
		s, err := config.OpenDefault()
		if err != nil {
			return nil, err
		}
		store = s
	}

	opts, err := config.LoadOptions(store.Dir())
	if err != nil {
		return nil, err
	}

	logPath := ""
	if interactive {
		logPath = opts.LogFile
	}
	if err := logging.Initialize(opts.LogLevel, logPath); err != nil {
		return nil, err
	}

	settings, err := store.LoadSettings()
	if err != nil {
		settings = config.DefaultSettings()
		// Keep the user's file; the first save would otherwise replace it.
		backup, backupErr := store.BackupSettings()
		logging.Warn("Ignoring unreadable settings",
			zap.String("path", store.SettingsPath()),
			zap.String("backup", backup),
			zap.Error(err),
			zap.NamedError("backup_error", backupErr),
		)
		if !interactive && backupErr == nil {
			fmt.Fprintf(os.Stderr, "Warning: %v; using defaults (original moved to %s)\n", err, backup)
		}
	}

	return &environment{
		opts:     opts,
		store:    store,
		settings: settings,
		resolver: location.NewClient(opts.GeocodingURL, opts.UserAgent, opts.Timeout),
		provider: weather.NewClient(opts.ForecastURL, opts.UserAgent, opts.Timeout),
	}, nil
}

func (e *environment) formatter() weather.Formatter {
	return weather.NewFormatter(
		e.settings.Units == config.Fahrenheit,
		e.settings.TimeFormat == config.TwentyFour,
	)
}

// runApp launches the interactive interface
func runApp(cmd *cobra.Command, args []string) error {
	env, err := setup(true)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	state, orch := newSession(env)

	var changes <-chan config.Change
	watcher, err := config.NewWatcher(env.store)
	if err == nil {
		err = watcher.Start(ctx)
	}
	if err != nil {
		// The app still works without live reload.
		logging.Warn("Config watcher unavailable", zap.Error(err))
	} else {
		defer watcher.Close()
		changes = watcher.Changes()
	}

	logging.Info("Starting",
		zap.String("config_dir", env.store.Dir()),
		zap.String("location", env.settings.Location()),
	)
	return tui.Run(ctx, state, orch, changes)
}

// newSession builds the interactive state. The terminal background is probed
// here, before the program owns the tty, so theme effects only read the
// cached answer.
func newSession(env *environment) (*app.State, *app.Orchestrator) {
	env.store.DetectSystemMode()
	return app.NewState(env.settings, env.opts.FallbackCity),
		app.NewOrchestrator(env.resolver, env.provider, env.store)
}

// lookupCmd resolves a place name
var lookupCmd = &cobra.Command{
	Use:   "lookup <place>",
	Short: "Search for a place",
	Long: `Search the geocoding service for a place name and list the matches,
best match first.

With --save the best match becomes the location used by the interactive
interface and by 'weather show'.`,
	Example: `  # List matches
  weather lookup paris

  # Multi-word names need no quoting
  weather lookup new york --save`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	env, err := setup(false)
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Place Search", "weather lookup", []ui.Field{{Key: "Query", Value: query}})

	locs, err := env.resolver.Search(cmd.Context(), query)
	if err != nil {
		p.PrintError("Search failed", errors.New(remote.ShortMessage(err)), networkHints(err))
		return fmt.Errorf("lookup %q: %w", query, err)
	}
	p.PrintLocations(query, locs)

	if !lookupSave || len(locs) == 0 {
		return nil
	}
	best := locs[0]
	if err := env.store.SaveSettings(env.settings.WithLocation(best.DisplayName, best.Lat, best.Lon)); err != nil {
		p.PrintError("Could not save location", err, []string{"Check permissions on " + env.store.Dir()})
		return err
	}
	p.PrintSuccess("Location saved", []ui.Field{
		{Key: "Place", Value: best.DisplayName},
		{Key: "Coordinates", Value: best.Lat + ", " + best.Lon},
	})
	return nil
}

// showCmd prints a forecast report
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the forecast",
	Long: `Print current conditions with the hourly and daily outlook.

Uses the saved location unless --place is given. When nothing is saved the
fallback city is used. Units and time format follow the saved settings.`,
	Example: `  # Forecast for the saved location
  weather show

  # Somewhere else, next 12 hours and 3 days
  weather show --place "Lisbon" --hours 12 --days 3`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	env, err := setup(false)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	p := ui.NewPrinter(cmd.OutOrStdout())

	name, lat, lon, haveCoords := showPlace, "", "", false
	if name == "" {
		name = env.settings.Location()
		lat, lon, haveCoords = env.settings.Coordinates()
	}
	if name == "" {
		name = env.opts.FallbackCity
	}

	p.PrintHeader("Forecast", "weather show", []ui.Field{
		{Key: "Place", Value: name},
		{Key: "Units", Value: env.settings.Units.String()},
	})

	prog := ui.NewProgress("Resolving location", "Fetching forecast")

	if haveCoords {
		prog.SkipStep(1, "saved")
	} else {
		prog.StartStep(1)
		loc, err := resolveOne(ctx, env.resolver, name)
		if err != nil {
			prog.FailStep(1, remote.ShortMessage(err))
			p.PrintStep(prog, 1)
			p.PrintError("Could not get location data", err, networkHints(err))
			return err
		}
		name, lat, lon = loc.DisplayName, loc.Lat, loc.Lon
		prog.CompleteStep(1, name)
	}
	p.PrintStep(prog, 1)

	prog.StartStep(2)
	snap, err := fetch(ctx, env.provider, lat, lon)
	if err != nil {
		prog.FailStep(2, remote.ShortMessage(err))
		p.PrintStep(prog, 2)
		p.PrintError("Could not get weather data", err, networkHints(err))
		return err
	}
	prog.CompleteStep(2, snap.Timezone)
	p.PrintStep(prog, 2)
	p.Newline()

	p.PrintForecast(name, *snap, env.formatter(), showHours, showDays)
	return nil
}

func resolveOne(ctx context.Context, r location.Resolver, query string) (location.Location, error) {
	locs, err := r.Search(ctx, query)
	if err != nil {
		return location.Location{}, err
	}
	if len(locs) == 0 {
		return location.Location{}, fmt.Errorf("no places match %q", query)
	}
	return locs[0], nil
}

func fetch(ctx context.Context, provider weather.Provider, lat, lon string) (*weather.Snapshot, error) {
	la, errLat := strconv.ParseFloat(lat, 64)
	lo, errLon := strconv.ParseFloat(lon, 64)
	if errLat != nil || errLon != nil {
		return nil, fmt.Errorf("invalid coordinates %s, %s", lat, lon)
	}
	snap, err := provider.Fetch(ctx, la, lo)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, errors.New("forecast response had no current conditions")
	}
	return snap, nil
}

func networkHints(err error) []string {
	switch {
	case remote.IsNetworkError(err):
		return []string{
			"Check your network connection",
			"Override service URLs with WEATHER_GEOCODING_URL / WEATHER_FORECAST_URL",
		}
	case remote.IsHTTPError(err):
		return []string{"The service may be rate limiting; try again shortly"}
	default:
		return nil
	}
}

// themeCmd records the desktop dark-mode setting
var themeCmd = &cobra.Command{
	Use:   "theme <light|dark>",
	Short: "Record the system theme mode",
	Long: `Record whether the desktop is in light or dark mode.

When the theme setting is "system", the interface follows this record and
restyles immediately when it changes. Call it from a desktop dark-mode hook.
Without a record the terminal background is probed instead.`,
	Example:   `  weather theme dark`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE:      runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	mode, err := config.ParseTheme(args[0])
	if err == nil && mode == config.System {
		err = errors.New(`theme mode must be "light" or "dark"`)
	}
	if err != nil {
		return err
	}

	env, err := setup(false)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if err := env.store.SaveThemeMode(mode); err != nil {
		p.PrintError("Could not record theme mode", err, []string{"Check permissions on " + env.store.Dir()})
		return err
	}
	p.PrintSuccess("Theme mode recorded", []ui.Field{
		{Key: "Mode", Value: mode.String()},
		{Key: "File", Value: env.store.ThemeModePath()},
	})
	return nil
}

// configCmd groups config inspection commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(false)
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintFields("", []ui.Field{
			{Key: "Settings", Value: env.store.SettingsPath()},
			{Key: "Theme mode", Value: env.store.ThemeModePath()},
			{Key: "Options", Value: env.store.OptionsPath()},
			{Key: "Log file", Value: env.opts.LogFile},
		})
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(false)
		if err != nil {
			return err
		}
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintFields("Settings", settingsFields(env))
		p.Newline()
		p.PrintFields("Options", []ui.Field{
			{Key: "Geocoding URL", Value: env.opts.GeocodingURL},
			{Key: "Forecast URL", Value: env.opts.ForecastURL},
			{Key: "Timeout", Value: env.opts.Timeout.String()},
			{Key: "Fallback city", Value: env.opts.FallbackCity},
			{Key: "Log level", Value: orNone(env.opts.LogLevel)},
		})
		return nil
	},
}

func settingsFields(env *environment) []ui.Field {
	s := env.settings
	theme := s.Theme.String()
	if s.Theme == config.System {
		if eff, err := env.store.EffectiveTheme(s.Theme); err == nil {
			theme += " (" + eff.String() + ")"
		}
	}

	coords := "none"
	if lat, lon, ok := s.Coordinates(); ok {
		coords = lat + ", " + lon
	}

	return []ui.Field{
		{Key: "Units", Value: s.Units.String()},
		{Key: "Time format", Value: s.TimeFormat.String()},
		{Key: "Theme", Value: theme},
		{Key: "Location", Value: orNone(s.Location())},
		{Key: "Coordinates", Value: coords},
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
