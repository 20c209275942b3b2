package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/weather/internal/app"
	"github.com/muurk/weather/internal/config"
)

func newTestModel() Model {
	state := app.NewState(config.DefaultSettings(), "Denver")
	m := NewModel(context.Background(), state, nil, nil)
	m.Width, m.Height = 100, 30
	return m
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) []tea.KeyMsg {
	var keys []tea.KeyMsg
	for _, r := range s {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return keys
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want app.KeyEvent
	}{
		{"ctrl", tea.KeyMsg{Type: tea.KeyCtrlQ}, app.KeyEvent{Mods: app.ModCtrl, Key: "q"}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, app.KeyEvent{Mods: app.ModAlt, Key: "x"}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, app.KeyEvent{Mods: app.ModShift, Key: "tab"}},
		{"plain", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")}, app.KeyEvent{Key: "u"}},
		{"plus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, app.KeyEvent{Key: "+"}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, app.KeyEvent{Key: "enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyEvent(tt.msg); got != tt.want {
				t.Errorf("keyEvent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChangeCityDialogFlow(t *testing.T) {
	m := newTestModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.State().Dialogs.Len() != 1 {
		t.Fatalf("Dialogs.Len() = %d, want 1", m.State().Dialogs.Len())
	}
	if !m.input.Focused() {
		t.Error("text field should be focused while the dialog is open")
	}

	m = press(t, m, runes("Paris")...)
	front, _ := m.State().Dialogs.Front()
	if front != (app.ChangeCity{Text: "Paris"}) {
		t.Errorf("front dialog = %+v, want Paris", front)
	}

	// Panel and navigation keys are typed, not interpreted, while the dialog is open.
	m = press(t, m, runes("1")...)
	if m.State().Nav.Active() != app.PageHourly {
		t.Error("digit in dialog should not switch pages")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().Dialogs.Len() != 0 {
		t.Errorf("Dialogs.Len() = %d after enter, want 0", m.State().Dialogs.Len())
	}
	if m.input.Focused() || m.input.Value() != "" {
		t.Error("text field should be cleared and blurred after the dialog closes")
	}
}

func TestDialogCancel(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	m = press(t, m, runes("Oslo")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.State().Dialogs.Len() != 0 {
		t.Error("esc should cancel the dialog")
	}
}

func TestSettingsPanelKeys(t *testing.T) {
	m := newTestModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.State().Context.Visible || m.State().Context.Page != app.ContextSettings {
		t.Fatal("ctrl+s should show the settings panel")
	}

	m = press(t, m, runes("u")...)
	if m.State().Settings.Units != config.Celsius {
		t.Errorf("Units = %v, want celsius", m.State().Settings.Units)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.State().Nav.Active() != app.PageDaily {
		t.Errorf("Active() = %v, want daily", m.State().Nav.Active())
	}
}

func TestModifiersTracked(t *testing.T) {
	m := newTestModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	if m.State().Modifiers != app.ModCtrl {
		t.Errorf("Modifiers = %v, want ctrl", m.State().Modifiers)
	}
	m = press(t, m, runes("x")...)
	if m.State().Modifiers != 0 {
		t.Errorf("Modifiers = %v, want none", m.State().Modifiers)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(app.QuitRequested{})
	m = updated.(Model)
	if !m.State().Quitting {
		t.Error("state should be quitting")
	}
	if cmd == nil {
		t.Fatal("QuitRequested should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("QuitRequested should quit the program")
	}
}

func TestThemeApplied(t *testing.T) {
	m := newTestModel()
	light := app.PaletteFor(config.Light)

	updated, _ := m.Update(app.ThemeApplied{Palette: light})
	m = updated.(Model)
	if m.styles.Palette != light {
		t.Errorf("palette = %+v, want light", m.styles.Palette)
	}
}

func TestConfigChangeMessage(t *testing.T) {
	m := newTestModel()
	edited := config.DefaultSettings()
	edited.TimeFormat = config.TwentyFour

	updated, _ := m.Update(configChangeMsg{change: config.Change{Settings: &edited}})
	m = updated.(Model)
	if m.State().Settings.TimeFormat != config.TwentyFour {
		t.Error("external settings edit should be applied")
	}
}

func TestViewRenders(t *testing.T) {
	m := newTestModel()

	view := m.View()
	for _, want := range []string{"Weather", "Hourly", "Daily", "Details", "Loading weather"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	view = m.View()
	for _, want := range []string{"Settings", "General", "Fahrenheit", "Appearance"} {
		if !strings.Contains(view, want) {
			t.Errorf("settings View() missing %q", want)
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	view = m.View()
	for _, want := range []string{"Change city", "Save", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("dialog View() missing %q", want)
		}
	}
}

func TestDialogKeepsLineStartKey(t *testing.T) {
	m := newTestModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	m = press(t, m, runes("aris")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m = press(t, m, runes("P")...)

	if m.State().Context.Visible {
		t.Error("ctrl+a must not open the About panel behind the dialog")
	}
	front, _ := m.State().Dialogs.Front()
	if front != (app.ChangeCity{Text: "Paris"}) {
		t.Errorf("front dialog = %+v, want Paris", front)
	}
}
