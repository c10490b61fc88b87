package typeahead

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wxnacy/typeahead/pkg/suggest"
)

// SelectMsg 选中或清空时发出，清空时 Option 为 nil
type SelectMsg struct {
	ID     string
	Option *suggest.Option
}

// ClearMsg 点击清除图标或按清除快捷键时发出
type ClearMsg struct {
	ID string
}

// ChangeMsg 选中导致输入框的值变化时发出
type ChangeMsg struct {
	ID    string
	Value string
}

// searchMsg 防抖结束，开始搜索
type searchMsg struct {
	id   string
	seq  uint64
	term string
}

// resultsMsg 远程查询完成
type resultsMsg struct {
	id      string
	seq     uint64
	term    string
	options []suggest.Option
	err     error
}

// blurMsg 失焦等待结束
type blurMsg struct {
	id string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
