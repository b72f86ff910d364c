package scopeui

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
)

const settingsFields = 3

// openSettings opens the grid settings modal seeded with current values.
func (m Model) openSettings() (tea.Model, tea.Cmd) {
	vis := m.Vis.Normalize()

	m.SettingsOpen = true
	m.SettingsFocus = 0

	m.BaseInput = textinput.New()
	m.BaseInput.Prompt = ""
	m.BaseInput.CharLimit = 12
	m.BaseInput.SetValue(strconv.FormatFloat(vis.BaseSize, 'g', -1, 64))

	m.SubdivInput = textinput.New()
	m.SubdivInput.Prompt = ""
	m.SubdivInput.CharLimit = 4
	m.SubdivInput.SetValue(strconv.Itoa(vis.Subdivisions))

	m.IntervalInput = textinput.New()
	m.IntervalInput.Prompt = ""
	m.IntervalInput.CharLimit = 12
	if vis.Interval > 0 {
		m.IntervalInput.SetValue(strconv.FormatFloat(vis.Interval, 'g', -1, 64))
	}

	cmd := m.BaseInput.Focus()
	return m, cmd
}

// handleSettingsKeys processes keys while the settings modal is open.
func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc", "escape":
		m.SettingsOpen = false
		return m, nil

	case "enter":
		m = m.applySettings()
		m.SettingsOpen = false
		return m, nil

	case "tab":
		return m.focusSettings((m.SettingsFocus + 1) % settingsFields)
	case "shift+tab":
		return m.focusSettings((m.SettingsFocus + settingsFields - 1) % settingsFields)

	default:
		// Forward to the active textinput
		var cmd tea.Cmd
		switch m.SettingsFocus {
		case 0:
			m.BaseInput, cmd = m.BaseInput.Update(msg)
		case 1:
			m.SubdivInput, cmd = m.SubdivInput.Update(msg)
		case 2:
			m.IntervalInput, cmd = m.IntervalInput.Update(msg)
		}
		return m, cmd
	}
}

// focusSettings moves input focus to field i.
func (m Model) focusSettings(i int) (tea.Model, tea.Cmd) {
	m.BaseInput.Blur()
	m.SubdivInput.Blur()
	m.IntervalInput.Blur()
	m.SettingsFocus = i
	var cmd tea.Cmd
	switch i {
	case 0:
		cmd = m.BaseInput.Focus()
	case 1:
		cmd = m.SubdivInput.Focus()
	case 2:
		cmd = m.IntervalInput.Focus()
	}
	return m, cmd
}

// applySettings parses the input fields into the grid visuals. Fields that
// fail to parse keep their previous value; an empty interval clears the
// override and restores automatic LOD.
func (m Model) applySettings() Model {
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.BaseInput.Value()), 64); err == nil && v > 0 {
		m.Vis.BaseSize = v
	}
	if n, err := strconv.Atoi(strings.TrimSpace(m.SubdivInput.Value())); err == nil && n >= 2 {
		m.Vis.Subdivisions = n
	}
	iv := strings.TrimSpace(m.IntervalInput.Value())
	if iv == "" {
		m.Vis.Interval = 0
	} else if v, err := strconv.ParseFloat(iv, 64); err == nil && v > 0 {
		m.Vis.Interval = v
	}
	return m
}

// buildSettingsLayer renders the settings modal as a centered Z=100 layer.
func (m Model) buildSettingsLayer() *lipgloss.Layer {
	modalBG := c("#0d1624")

	titleStyle := lipgloss.NewStyle().
		Foreground(c("#7fd4ff")).
		Background(modalBG).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(c("#d8a657")).
		Background(modalBG)

	hintStyle := lipgloss.NewStyle().
		Foreground(c("#3a4a5e")).
		Background(modalBG).
		Italic(true)

	field := func(i int, name string, in textinput.Model) []string {
		focus := "  "
		if m.SettingsFocus == i {
			focus = "▸ "
		}
		return []string{
			labelStyle.Render(focus + name + ":"),
			"  " + in.View(),
		}
	}

	lines := []string{
		titleStyle.Render("  ▦ GRID SETTINGS"),
		"",
	}
	lines = append(lines, field(0, "Base size (world units)", m.BaseInput)...)
	lines = append(lines, "")
	lines = append(lines, field(1, "Subdivisions", m.SubdivInput)...)
	lines = append(lines, "")
	lines = append(lines, field(2, "Interval (empty for auto)", m.IntervalInput)...)
	lines = append(lines, "",
		hintStyle.Render("  [tab] switch  [enter] apply  [esc] cancel"))

	content := strings.Join(lines, "\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c("#7fd4ff")).
		Background(modalBG).
		Width(44).
		Padding(1, 2)

	return centeredLayer(boxStyle.Render(content), m.Width, m.Height, "settings-modal")
}
