package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/muurk/weather/internal/app"
	"github.com/muurk/weather/internal/config"
	"github.com/muurk/weather/internal/logging"
)

// configChangeMsg delivers a watcher change into the event loop.
type configChangeMsg struct {
	change config.Change
}

// Model is the bubbletea model driving the application core.
type Model struct {
	ctx     context.Context
	state   *app.State
	orch    *app.Orchestrator
	changes <-chan config.Change

	styles  Styles
	zones   *zone.Manager
	input   textinput.Model
	spinner spinner.Model
	help    help.Model

	lastMods app.Modifiers

	// UI state
	Width  int
	Height int
}

// NewModel creates the model. changes may be nil when no watcher runs.
func NewModel(ctx context.Context, state *app.State, orch *app.Orchestrator, changes <-chan config.Change) Model {
	styles := NewStyles(app.PaletteFor(config.Dark))

	input := textinput.New()
	input.Placeholder = "Search"
	input.CharLimit = 120
	input.Width = DialogWidth - 8

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:     ctx,
		state:   state,
		orch:    orch,
		changes: changes,
		zones:   zone.New(),
		input:   input,
		spinner: s,
		help:    help.New(),
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
	m.applyStyles(styles)
	return m
}

// State returns the core state. It must only be read from the event loop.
func (m Model) State() *app.State {
	return m.state
}

// Init runs the startup effects and starts background listeners
func (m Model) Init() tea.Cmd {
	cmds := m.run(app.Init(m.state))
	cmds = append(cmds, m.spinner.Tick, m.waitForChange(), tea.SetWindowTitle("Weather"))
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.dispatch(app.RequestQuit{})
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if target := m.clickTarget(msg); target != nil {
			return m.dispatch(target)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case configChangeMsg:
		var cmds []tea.Cmd
		if msg.change.Settings != nil {
			restyle := msg.change.Settings.Theme != m.state.Settings.Theme
			cmds = append(cmds, m.dispatchCmd(app.ConfigChanged{Settings: *msg.change.Settings}))
			if restyle {
				cmds = append(cmds, m.run([]app.Effect{app.PersistTheme{Theme: msg.change.Settings.Theme}})...)
			}
		}
		if msg.change.ThemeMode {
			cmds = append(cmds, m.dispatchCmd(app.SystemThemeModeChanged{}))
		}
		cmds = append(cmds, m.waitForChange())
		return m, tea.Batch(cmds...)

	case app.ThemeApplied:
		m.applyStyles(NewStyles(msg.Palette))
		return m, nil

	case app.QuitRequested:
		app.Update(m.state, msg)
		return m, tea.Quit

	case app.Message:
		return m.dispatch(msg)
	}

	return m, nil
}

// handleKey routes a key press to the core, or to the dialog text field when
// the core has no use for it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := keyEvent(msg)

	var cmds []tea.Cmd
	if ev.Mods != m.lastMods {
		m.lastMods = ev.Mods
		cmds = append(cmds, m.dispatchCmd(app.ModifiersChanged{Mods: ev.Mods}))
	}

	if _, open := m.state.Dialogs.Front(); open && app.Resolve(m.state, ev) == nil {
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if text := m.input.Value(); text != before {
			cmds = append(cmds, m.dispatchCmd(app.DialogTextChanged{Text: text}))
		}
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, m.dispatchCmd(ev))
	return m, tea.Batch(cmds...)
}

func (m Model) dispatch(msg app.Message) (tea.Model, tea.Cmd) {
	cmd := m.dispatchCmd(msg)
	return m, cmd
}

// dispatchCmd feeds msg through the core and returns the effects as commands.
// The text field is resynchronised with the dialog queue afterwards.
func (m *Model) dispatchCmd(msg app.Message) tea.Cmd {
	effects := app.Update(m.state, msg)

	var focus tea.Cmd
	if front, ok := m.state.Dialogs.Front(); ok {
		if cc, isCity := front.(app.ChangeCity); isCity && cc.Text != m.input.Value() {
			m.input.SetValue(cc.Text)
		}
		if !m.input.Focused() {
			focus = m.input.Focus()
		}
	} else if m.input.Focused() {
		m.input.Blur()
		m.input.Reset()
	}

	cmds := m.run(effects)
	if focus != nil {
		cmds = append(cmds, focus)
	}
	return tea.Batch(cmds...)
}

// run hands effects to the orchestrator. tea.Batch runs each in its own goroutine.
func (m Model) run(effects []app.Effect) []tea.Cmd {
	if len(effects) == 0 || m.orch == nil {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, c := range m.orch.Run(m.ctx, effects) {
		cmds = append(cmds, func() tea.Msg {
			msg := c()
			if msg == nil {
				return nil
			}
			return msg
		})
	}
	return cmds
}

// waitForChange blocks for the next watcher change.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		logging.Debug("Config change received", zap.Bool("settings", change.Settings != nil), zap.Bool("theme_mode", change.ThemeMode))
		return configChangeMsg{change: change}
	}
}

func (m *Model) applyStyles(s Styles) {
	m.styles = s
	m.spinner.Style = s.Title
	m.input.PromptStyle = s.Title
	m.input.TextStyle = s.Text
	m.input.PlaceholderStyle = s.Muted
	m.help.Styles.ShortKey = s.Title
	m.help.Styles.ShortDesc = s.Muted
	m.help.Styles.ShortSeparator = s.Muted
}

// clickTarget maps a click to the message of the zone under the pointer.
func (m Model) clickTarget(msg tea.MouseMsg) app.Message {
	vm := app.Present(m.state)

	if vm.Dialog != nil {
		switch {
		case m.inZone(zoneDialogSave, msg):
			return app.DialogConfirm{Text: vm.Dialog.Text}
		case m.inZone(zoneDialogCancel, msg):
			return app.DialogCancel{}
		}
		// The dialog is modal.
		return nil
	}

	for _, item := range vm.Nav {
		if m.inZone(navZone(item.ID), msg) {
			return app.NavSelect{Page: item.ID}
		}
	}

	if vm.Context == nil {
		return nil
	}
	if about := vm.Context.About; about != nil {
		for i, link := range about.Links {
			if m.inZone(linkZone(i), msg) {
				return app.LaunchURL{URL: link.URL}
			}
		}
	}
	if settings := vm.Context.Settings; settings != nil {
		for si, section := range settings.Sections {
			for ii, item := range section.Items {
				for oi := range item.Options {
					if m.inZone(optionZone(si, ii, oi), msg) {
						return item.Choose(oi)
					}
				}
			}
		}
	}
	return nil
}

func (m Model) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

const (
	zoneDialogSave   = "dialog-save"
	zoneDialogCancel = "dialog-cancel"
)

func navZone(id app.PageID) string {
	return fmt.Sprintf("nav-%d", int(id))
}

func linkZone(i int) string {
	return fmt.Sprintf("link-%d", i)
}

func optionZone(section, item, option int) string {
	return fmt.Sprintf("opt-%d-%d-%d", section, item, option)
}
