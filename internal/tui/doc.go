// Package tui is the terminal front end of weather.
//
// Model adapts bubbletea to the controller core in internal/app:
//
//   - key presses become app.KeyEvent (and app.ModifiersChanged when the held
//     modifiers differ from the previous key); keys the core does not resolve
//     while the change city dialog is open are typed into its text field
//   - mouse clicks on tabs, settings options, dialog buttons and About links
//     are mapped to core messages through bubblezone marks
//   - effects returned by the core are handed to the app.Orchestrator and each
//     resulting command runs in its own goroutine via tea.Batch
//   - config.Watcher changes are delivered through a re-armed command
//
// The View renders app.Present's view model with lipgloss styles derived from
// the palette carried by app.ThemeApplied.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────┐
//	│ Weather  Denver, CO                         v1.0.0   │
//	│──────────────────────────────────────────────────────│
//	│ [◷ Hourly] [▦ Daily] [ⓘ Details]                     │
//	│                                        │ Settings    │
//	│  body for the active page              │  ...        │
//	│                                        │             │
//	│──────────────────────────────────────────────────────│
//	│ ctrl+q quit • ctrl+l change city • ...               │
//	└──────────────────────────────────────────────────────┘
package tui
