package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func NewTerminal(m Model, opts ...tea.ProgramOption) *Terminal {
	return &Terminal{
		model: m,
		opts:  opts,
	}
}

type Terminal struct {
	program *tea.Program
	model   Model
	opts    []tea.ProgramOption
}

// Send 向运行中的程序发送消息，程序未启动时忽略
func (t *Terminal) Send(msg tea.Msg) {
	if t.program != nil && msg != nil {
		t.program.Send(msg)
	}
}

// Run 运行界面直到退出，返回最终的动作与数据
func (t *Terminal) Run() (string, any, error) {
	for {
		t.program = tea.NewProgram(t.model, t.opts...)

		if _, err := t.program.Run(); err != nil {
			return ActionNone, nil, err
		}

		// 需要在界面外处理的动作处理完后重新运行
		action := t.model.GetAction()
		if action == ActionRestore {
			t.model.Restore()
			continue
		}
		return action, t.model.GetActionPayload(), nil
	}
}
