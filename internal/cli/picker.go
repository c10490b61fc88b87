package cli

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wxnacy/typeahead"
	"github.com/wxnacy/typeahead/pkg/cache"
	"github.com/wxnacy/typeahead/pkg/log"
	"github.com/wxnacy/typeahead/pkg/suggest"
	"github.com/wxnacy/typeahead/pkg/tui"
)

type pickerKeyMap struct {
	typeahead.KeyMap
	Reload key.Binding
	Quit   key.Binding
}

func (km pickerKeyMap) ShortHelp() []key.Binding {
	return append(km.KeyMap.ShortHelp(), km.Reload, km.Quit)
}

func (km pickerKeyMap) FullHelp() [][]key.Binding {
	return append(km.KeyMap.FullHelp(), []key.Binding{km.Reload, km.Quit})
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// picker 单个输入框的选择界面，选中后退出
type picker struct {
	ac    *typeahead.Autocomplete
	opts  []typeahead.Option
	store cache.Cache
	keys  pickerKeyMap
	help  help.Model

	action   string
	selected *suggest.Option
	status   string
}

var _ tui.Model = (*picker)(nil)

func newPicker(store cache.Cache, opts ...typeahead.Option) *picker {
	p := &picker{
		opts:  opts,
		store: store,
		help:  help.New(),
	}
	p.reset()
	return p
}

func (p *picker) reset() {
	p.ac = typeahead.New(p.opts...)
	p.ac.SetOrigin(0, 0)
	p.keys = pickerKeyMap{
		KeyMap: p.ac.Config().KeyMap,
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
	// 只有远程数据并开启缓存时可以重新加载
	p.keys.Reload.SetEnabled(p.store != nil)
	p.action = tui.ActionNone
	p.selected = nil
}

func (p *picker) Init() tea.Cmd {
	return tea.Batch(p.ac.Init(), p.ac.Focus())
}

func (p *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			p.action = tui.ActionNone
			return p, tea.Quit
		case key.Matches(msg, p.keys.Reload):
			p.action = tui.ActionRestore
			return p, tea.Quit
		}

	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
		return p, nil

	case typeahead.SelectMsg:
		if msg.ID != p.ac.ID() || msg.Option == nil {
			return p, nil
		}
		p.selected = msg.Option
		p.action = tui.ActionSelect
		return p, tea.Quit

	case typeahead.ClearMsg:
		p.status = "cleared"
		return p, nil

	case typeahead.ChangeMsg:
		return p, nil
	}

	p.status = ""
	_, cmd := p.ac.Update(msg)
	return p, cmd
}

func (p *picker) View() string {
	view := p.ac.View() + "\n\n" + p.help.View(p.keys)
	if p.status != "" {
		view += "\n" + statusStyle.Render(p.status)
	}
	return view
}

func (p *picker) GetAction() string {
	return p.action
}

func (p *picker) GetActionPayload() any {
	return p.selected
}

// Restore 清空响应缓存后重新创建输入框
func (p *picker) Restore() {
	if p.store != nil {
		if err := p.store.Clear(); err != nil {
			log.GetLogger().Warnf("清空缓存失败: %v", err)
		}
	}
	p.ac.Destroy()
	p.reset()
}

func (p *picker) Destroy() {
	p.ac.Destroy()
}
