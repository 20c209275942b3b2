package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/weather/internal/app"
)

// View renders the current state
func (m Model) View() string {
	vm := app.Present(m.state)
	width, height := m.size()

	if vm.Dialog != nil {
		return m.zones.Scan(m.styles.RenderModal(m.renderDialog(vm.Dialog, vm.Actions, width), width, height))
	}

	header := m.renderHeader(vm, width)
	footer := m.help.View(newHintKeyMap(vm.Actions))

	main := lipgloss.JoinVertical(lipgloss.Left, m.renderNav(vm.Nav), "", m.renderBody(vm.Body))
	if vm.Notice != "" && vm.Body.Kind != app.BodyEmpty {
		main = lipgloss.JoinVertical(lipgloss.Left, main, "", m.styles.Notice.Render("✗ "+vm.Notice))
	}

	content := main
	if vm.Context != nil && width-4 > ContextPanelWidth+MinTerminalWidth/2 {
		bodyWidth := width - 4 - ContextPanelWidth - 1
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(bodyWidth).Render(main),
			" ",
			m.renderContext(vm.Context),
		)
	} else if vm.Context != nil {
		content = m.renderContext(vm.Context)
	}

	return m.zones.Scan(m.styles.RenderApplicationContainer(header, content, footer, width, height))
}

func (m Model) size() (int, int) {
	width, height := m.Width, m.Height
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < 10 {
		height = 10
	}
	return width, height
}

func (m Model) renderHeader(vm app.ViewModel, width int) string {
	left := m.styles.Title.Render(vm.Title)
	if vm.Body.Location != "" {
		left += "  " + m.styles.Text.Render(vm.Body.Location)
	}
	if vm.Body.Kind == app.BodyEmpty && vm.Notice == "" {
		left += "  " + m.spinner.View()
	}
	right := m.styles.Muted.Render(m.state.About.Version)

	gap := width - 6 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderNav(items []app.NavItem) string {
	tabs := make([]string, 0, len(items))
	for _, item := range items {
		style := m.styles.Tab
		if item.Active {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, m.zones.Mark(navZone(item.ID), style.Render(item.Icon+" "+item.Title)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderBody(body app.Body) string {
	switch body.Kind {
	case app.BodyEmpty:
		return m.styles.Muted.Render(body.Message)
	case app.BodyUnknown:
		return m.styles.Notice.Render(body.Message)
	}

	var b strings.Builder
	b.WriteString(m.styles.Headline.Render(body.Headline))
	b.WriteString("\n")

	switch body.Kind {
	case app.BodyHourly:
		rows := make([][]string, 0, len(body.Hourly))
		for _, h := range body.Hourly {
			rows = append(rows, []string{h.Time, h.Icon, h.Temperature, h.Precipitation, h.Condition})
		}
		b.WriteString(m.renderTable([]string{"Time", "", "Temp", "Rain", "Conditions"}, rows))

	case app.BodyDaily:
		rows := make([][]string, 0, len(body.Daily))
		for _, d := range body.Daily {
			rows = append(rows, []string{d.Day, d.Icon, d.High, d.Low, d.Precipitation, d.Condition})
		}
		b.WriteString(m.renderTable([]string{"Day", "", "High", "Low", "Precip", "Conditions"}, rows))

	case app.BodyDetails:
		rows := make([][]string, 0, len(body.Details))
		for _, d := range body.Details {
			rows = append(rows, []string{d.Label, d.Value})
		}
		b.WriteString(m.renderTable(nil, rows))
	}

	return b.String()
}

func (m Model) renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.TableHeader.PaddingRight(2)
			}
			if col == 0 {
				return m.styles.Muted.PaddingRight(2)
			}
			return m.styles.Text.PaddingRight(2)
		})
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}
	return t.Render()
}

func (m Model) renderContext(ctx *app.ContextView) string {
	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render(ctx.Title))
	b.WriteString("\n")

	switch {
	case ctx.About != nil:
		a := ctx.About
		b.WriteString(m.styles.Text.Bold(true).Render(a.Name))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Version " + a.Version))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Built " + a.CommitDate))
		b.WriteString("\n\n")
		for i, link := range a.Links {
			label := m.styles.Link.Render(link.Label)
			if link.Key != "" {
				label += m.styles.Muted.Render(" (" + link.Key + ")")
			}
			b.WriteString(m.zones.Mark(linkZone(i), label))
			b.WriteString("\n")
		}

	case ctx.Settings != nil:
		for si, section := range ctx.Settings.Sections {
			if si > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.styles.Section.Render(section.Title))
			b.WriteString("\n")
			for ii, item := range section.Items {
				b.WriteString(m.styles.Text.Render(item.Label))
				b.WriteString(m.styles.Muted.Render(" (" + item.Key + ")"))
				b.WriteString("\n")
				options := make([]string, 0, len(item.Options))
				for oi, opt := range item.Options {
					style := m.styles.Option
					if oi == item.Selected {
						style = m.styles.Selected
					}
					options = append(options, m.zones.Mark(optionZone(si, ii, oi), style.Render(opt)))
				}
				b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, options...))
				b.WriteString("\n")
			}
		}
	}

	return m.styles.Panel.Width(ContextPanelWidth - 2).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderDialog(d *app.DialogView, actions []app.ActionHint, width int) string {
	w := SafeModalWidth(DialogWidth, width)

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.zones.Mark(zoneDialogCancel, m.styles.Button.Render(d.Secondary)),
		" ",
		m.zones.Mark(zoneDialogSave, m.styles.Primary.Render(d.Primary)),
	)
	b.WriteString(lipgloss.PlaceHorizontal(w-6, lipgloss.Right, buttons))

	if d.Pending > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(strings.Repeat("•", d.Pending) + " more pending"))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(newHintKeyMap(actions)))

	return m.styles.Dialog.Width(w - 2).Render(b.String())
}
