package typeahead

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

func (m Autocomplete) View() string {
	line := m.inputLine()
	if m.destroyed || !m.state.Open() {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, m.dropdownView())
}

func (m Autocomplete) inputLine() string {
	line := m.input.View()
	if m.showClearIcon() {
		line += " " + m.cfg.Styles.ClearIcon.Render(m.cfg.ClearIcon)
	}
	return line
}

func (m Autocomplete) showClearIcon() bool {
	return !m.destroyed && m.cfg.Clearable && m.input.Value() != ""
}

func (m Autocomplete) dropdownView() string {
	styles := m.cfg.Styles
	switch m.state.Mode {
	case ModeNoData:
		return styles.Dropdown.Render(styles.NoData.Render(m.cfg.NoDataText))
	case ModeError:
		return styles.Dropdown.Render(styles.Error.Render(m.cfg.ErrorText))
	}

	width := 0
	for _, o := range m.state.Options {
		width = max(width, lipgloss.Width(styles.Item.Render(o.Title)))
	}
	rows := make([]string, len(m.state.Options))
	for i, o := range m.state.Options {
		style := styles.Item
		if i == m.state.Highlight {
			style = styles.ActiveItem
		}
		rows[i] = style.Width(width).Render(o.Title)
	}

	start, end := m.state.Window(m.cfg.MaxHeight)
	vp := viewport.New(width, end-start)
	vp.SetContent(strings.Join(rows, "\n"))
	vp.SetYOffset(start)
	return styles.Dropdown.Render(vp.View())
}

// hitClearIcon 坐标是否落在清除图标上
func (m Autocomplete) hitClearIcon(x, y int) bool {
	if !m.showClearIcon() || y != m.originY {
		return false
	}
	left := m.originX + lipgloss.Width(m.input.View()) + 1
	return x >= left && x < left+lipgloss.Width(m.cfg.ClearIcon)
}

// rowAt 坐标对应的候选项下标
func (m Autocomplete) rowAt(x, y int) (int, bool) {
	if x < m.originX || x >= m.originX+lipgloss.Width(m.dropdownView()) {
		return 0, false
	}
	dropdown := m.cfg.Styles.Dropdown
	row := y - m.originY - 1 - dropdown.GetBorderTopSize() - dropdown.GetPaddingTop()
	start, end := m.state.Window(m.cfg.MaxHeight)
	if row < 0 || row >= end-start {
		return 0, false
	}
	return start + row, true
}
