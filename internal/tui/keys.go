package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/weather/internal/app"
)

var modifierPrefixes = []struct {
	prefix string
	mod    app.Modifiers
}{
	{"ctrl+", app.ModCtrl},
	{"alt+", app.ModAlt},
	{"shift+", app.ModShift},
	{"super+", app.ModSuper},
}

// keyEvent converts a bubbletea key into the core's modifier set and key name,
// e.g. "alt+ctrl+q" becomes {ModCtrl|ModAlt, "q"}.
func keyEvent(msg tea.KeyMsg) app.KeyEvent {
	s := msg.String()
	var mods app.Modifiers

	for stripped := true; stripped; {
		stripped = false
		for _, p := range modifierPrefixes {
			if len(s) > len(p.prefix) && strings.HasPrefix(s, p.prefix) {
				mods |= p.mod
				s = s[len(p.prefix):]
				stripped = true
			}
		}
	}

	return app.KeyEvent{Mods: mods, Key: s}
}

// hintKeyMap adapts the view model's action hints to bubbles/help.
type hintKeyMap struct {
	bindings []key.Binding
}

func newHintKeyMap(hints []app.ActionHint) hintKeyMap {
	km := hintKeyMap{bindings: make([]key.Binding, 0, len(hints))}
	for _, h := range hints {
		km.bindings = append(km.bindings, key.NewBinding(
			key.WithKeys(h.Keys),
			key.WithHelp(h.Keys, h.Description),
		))
	}
	return km
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k hintKeyMap) ShortHelp() []key.Binding {
	return k.bindings
}

// FullHelp returns keybindings for the expanded help view
func (k hintKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings}
}
