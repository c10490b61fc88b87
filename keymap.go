package typeahead

import (
	"github.com/charmbracelet/bubbles/key"
)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "next suggestion"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "prev suggestion"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear"),
		),
	}
}

type KeyMap struct {
	// 下拉框打开时生效
	Next   key.Binding // ShortHelp
	Prev   key.Binding // ShortHelp
	Select key.Binding // ShortHelp
	Close  key.Binding

	// Clearable 时生效
	Clear key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Prev, km.Select}
}

// FullHelp 返回所有快捷键的帮助信息。
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Next, km.Prev, km.Select},
		{km.Close, km.Clear},
	}
}

// ListenKeys 返回下拉框打开时需要拦截的快捷键，其余按键交给输入框。
func (km KeyMap) ListenKeys() []key.Binding {
	return []key.Binding{
		km.Next,
		km.Prev,
		km.Select,
		km.Close,
	}
}
