package typeahead

import "github.com/charmbracelet/lipgloss"

var BaseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var BaseFocusStyle = BaseStyle.
	BorderForeground(lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"})

// Styles 下拉框各部分的样式
type Styles struct {
	Dropdown   lipgloss.Style
	Item       lipgloss.Style
	ActiveItem lipgloss.Style
	NoData     lipgloss.Style
	Error      lipgloss.Style
	ClearIcon  lipgloss.Style
}

func DefaultStyles() Styles {
	item := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Dropdown: BaseFocusStyle,
		Item:     item,
		ActiveItem: item.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		NoData: item.
			Foreground(lipgloss.Color("240")).
			Italic(true),
		Error: item.
			Foreground(lipgloss.Color("196")),
		ClearIcon: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
