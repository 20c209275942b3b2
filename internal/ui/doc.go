// Package ui provides styled output for the weather subcommands.
//
// The interactive application lives in internal/tui. The one-shot commands
// (lookup, show, theme, config) print a report and exit, and this package
// renders those reports with Lipgloss so they share the look of the
// interactive screens.
//
// # Components
//
//   - Header: bordered banner with the command and its parameters
//   - Progress: step list for commands that make several remote calls
//   - Result: success and failure boxes, the latter with hints
//   - Forecast and location tables
//
// All output goes through a Printer, which wraps an io.Writer and the
// detected terminal width:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Forecast", "weather show", []ui.Field{{Key: "Place", Value: name}})
//	p.PrintForecast(name, *snap, formatter, 6, 7)
//
// Logging stays silent unless WEATHER_LOG_LEVEL is set, so the curated
// output is not interleaved with log lines.
package ui
