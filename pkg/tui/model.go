package tui

import tea "github.com/charmbracelet/bubbletea"

const (
	ActionNone    = ""
	ActionSelect  = "select"
	ActionRestore = "restore"
)

// Model 由 Terminal 运行的界面。程序退出后通过 GetAction 决定下一步。
type Model interface {
	Init() tea.Cmd
	View() string
	Update(tea.Msg) (tea.Model, tea.Cmd)
	GetAction() string
	GetActionPayload() any
	// Restore 在 ActionRestore 之后、重新运行之前调用
	Restore()
}
