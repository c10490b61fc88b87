package typeahead

import (
	"github.com/wxnacy/typeahead/pkg/suggest"
)

// Mode 下拉框的显示状态
type Mode int

const (
	ModeClosed  Mode = iota
	ModeResults      // 显示候选项
	ModeNoData       // 显示无结果占位
	ModeError        // 显示加载失败占位
)

func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "closed"
	case ModeResults:
		return "results"
	case ModeNoData:
		return "no-data"
	case ModeError:
		return "error"
	default:
		return "unknown"
	}
}

// State 单个实例的交互状态。所有方法都返回新值，不修改接收者。
//
// Highlight 始终位于 [-1, len(Options)-1]，Mode 为 ModeResults 时 Options 非空。
type State struct {
	Options   []suggest.Option // 当前候选项
	Highlight int              // 高亮下标，-1 表示没有高亮
	Mode      Mode
	Selected  *suggest.Option // 最近一次选中的项
	Offset    int             // 下拉框第一行对应的下标
}

func NewState() State {
	return State{Highlight: -1}
}

// Open 下拉框是否可见
func (s State) Open() bool {
	return s.Mode != ModeClosed
}

// WithResults 用新的候选项刷新状态
func (s State) WithResults(options []suggest.Option, autoSelectFirst, hideNoData bool) State {
	s.Offset = 0
	if len(options) == 0 {
		s.Options = nil
		s.Highlight = -1
		s.Mode = ModeNoData
		if hideNoData {
			s.Mode = ModeClosed
		}
		return s
	}
	s.Options = options
	s.Highlight = -1
	if autoSelectFirst {
		s.Highlight = 0
	}
	s.Mode = ModeResults
	return s
}

// WithError 远程查询失败
func (s State) WithError(hideNoData bool) State {
	s.Options = nil
	s.Highlight = -1
	s.Offset = 0
	s.Mode = ModeError
	if hideNoData {
		s.Mode = ModeClosed
	}
	return s
}

// MoveDown 高亮下一项，停在最后一项。window 为下拉框可见行数。
func (s State) MoveDown(window int) State {
	if len(s.Options) == 0 {
		return s
	}
	s.Highlight = min(len(s.Options)-1, s.Highlight+1)
	return s.scrollIntoView(window)
}

// MoveUp 高亮上一项，停在第一项。
func (s State) MoveUp(window int) State {
	if len(s.Options) == 0 {
		return s
	}
	s.Highlight = max(0, s.Highlight-1)
	return s.scrollIntoView(window)
}

// Close 关闭下拉框，保留候选项以便失焦时自动选中
func (s State) Close() State {
	s.Mode = ModeClosed
	return s
}

// WithSelected 记录选中项，nil 表示清空
func (s State) WithSelected(o *suggest.Option) State {
	if o != nil {
		selected := *o
		o = &selected
	}
	s.Selected = o
	return s
}

// Highlighted 返回当前高亮项
func (s State) Highlighted() (suggest.Option, bool) {
	if s.Highlight < 0 || s.Highlight >= len(s.Options) {
		return suggest.Option{}, false
	}
	return s.Options[s.Highlight], true
}

// Window 可见范围 [start, end)
func (s State) Window(window int) (int, int) {
	if window <= 0 || window > len(s.Options) {
		return 0, len(s.Options)
	}
	start := min(max(0, s.Offset), len(s.Options)-window)
	return start, start + window
}

func (s State) scrollIntoView(window int) State {
	if window <= 0 || s.Highlight < 0 {
		return s
	}
	if s.Highlight < s.Offset {
		s.Offset = s.Highlight
	} else if s.Highlight >= s.Offset+window {
		s.Offset = s.Highlight - window + 1
	}
	return s
}
