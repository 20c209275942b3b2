// Package config provides settings persistence and runtime options for weather.
//
// Two layers are managed here:
//
//   - Settings: the user's preferences (units, time format, theme and the
//     selected location), stored as a versioned YAML record in the Store.
//   - Options: runtime knobs such as service endpoints and timeouts, read by
//     viper from defaults, an optional options.toml, a .env file and WEATHER_*
//     environment variables. Options are never written back.
//
// # Storage Location
//
// The Store lives in a platform-appropriate directory:
//   - Linux: $XDG_CONFIG_HOME/com.muurk.Weather or $HOME/.config/com.muurk.Weather
//   - macOS: $HOME/.config/com.muurk.Weather
//   - Windows: %LOCALAPPDATA%\com.muurk.Weather
//
// Next to the settings file the Store keeps the system theme-mode record. It
// holds the desktop's light/dark preference and is written by
// `weather theme light|dark`, typically from a desktop dark-mode hook.
//
// # Change Notification
//
// A Watcher observes the Store directory with fsnotify and publishes a Change
// when either file is edited by another process. Writes made through the same
// Store are recognised and suppressed.
//
// # Thread Safety
//
// Store methods may be called from multiple goroutines. File writes are
// serialized by a mutex and performed atomically (temp file + rename).
package config
