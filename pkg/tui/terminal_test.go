package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptModel 每次运行立即退出，依次返回 actions 中的动作
type scriptModel struct {
	actions  []string
	runs     int
	restored int
}

func (m *scriptModel) Init() tea.Cmd {
	m.runs++
	return tea.Quit
}

func (m *scriptModel) View() string { return "" }
func (m *scriptModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }
func (m *scriptModel) Restore() { m.restored++ }
func (m *scriptModel) GetActionPayload() any { return m.runs }

func (m *scriptModel) GetAction() string {
	return m.actions[min(m.runs, len(m.actions))-1]
}

func newTestTerminal(m Model) *Terminal {
	return NewTerminal(m, tea.WithInput(nil), tea.WithOutput(io.Discard))
}

func TestTerminal_Run(t *testing.T) {
	m := &scriptModel{actions: []string{ActionSelect}}
	action, payload, err := newTestTerminal(m).Run()
	require.NoError(t, err)
	assert.Equal(t, ActionSelect, action)
	assert.Equal(t, 1, payload)
	assert.Equal(t, 0, m.restored)
}

func TestTerminal_RunRestore(t *testing.T) {
	m := &scriptModel{actions: []string{ActionRestore, ActionNone}}
	action, payload, err := newTestTerminal(m).Run()
	require.NoError(t, err)
	assert.Equal(t, ActionNone, action)
	assert.Equal(t, 2, payload)
	assert.Equal(t, 1, m.restored)
}

func TestTerminal_SendBeforeRun(t *testing.T) {
	term := newTestTerminal(&scriptModel{actions: []string{ActionNone}})
	// 未运行时不会阻塞
	term.Send(tea.Quit())
}
