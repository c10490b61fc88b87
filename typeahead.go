// Package typeahead 为 bubbles 输入框提供自动补全下拉框，数据来自静态列表或远程查询接口。
package typeahead

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wxnacy/typeahead/pkg/debounce"
	"github.com/wxnacy/typeahead/pkg/log"
	"github.com/wxnacy/typeahead/pkg/remote"
	"github.com/wxnacy/typeahead/pkg/suggest"
)

// New 创建输入框并绑定补全行为
func New(opts ...Option) *Autocomplete {
	cfg := newConfig(opts...)
	input := textinput.New()
	input.Prompt = cfg.Prompt
	input.Placeholder = cfg.Placeholder
	return attach(input, cfg)
}

// Attach 将补全行为绑定到已有输入框
func Attach(input textinput.Model, opts ...Option) *Autocomplete {
	return attach(input, newConfig(opts...))
}

// AttachAll 使用同一份配置绑定多个输入框，每个输入框拥有独立的状态
func AttachAll(inputs []textinput.Model, opts ...Option) []*Autocomplete {
	cfg := newConfig(opts...)
	acs := make([]*Autocomplete, 0, len(inputs))
	for _, input := range inputs {
		acs = append(acs, attach(input, cfg))
	}
	return acs
}

func attach(input textinput.Model, cfg Config) *Autocomplete {
	id := uuid.NewString()
	m := &Autocomplete{
		id:       id,
		cfg:      cfg,
		input:    input,
		state:     NewState(),
		debouncer: debounce.New[string](cfg.Debounce, nil),
		logger:    log.GetLogger().WithField("widget", id),
	}
	if cfg.local() {
		m.local = suggest.Normalize(cfg.Items, cfg.ItemTitle, cfg.ItemValue)
	} else if cfg.DataURL != "" {
		fetcherOpts := []remote.Option{
			remote.WithParam(cfg.RequestParam),
			remote.WithExtraParams(cfg.ExtraParams),
			remote.WithClient(cfg.HTTPClient),
			remote.WithLogger(m.logger),
		}
		if cfg.Cache != nil {
			fetcherOpts = append(fetcherOpts, remote.WithCache(cfg.Cache, cfg.CacheTTL))
		}
		m.fetcher = remote.New(cfg.DataURL, fetcherOpts...)
	}
	return m
}

type Autocomplete struct {
	id    string
	cfg   Config
	input textinput.Model
	state State

	local     []suggest.Option // 静态数据，绑定时归一化一次
	fetcher   *remote.Fetcher
	debouncer *debounce.Debouncer[string]
	reqSeq    uint64 // 最新一次远程查询的序号

	originX, originY int
	destroyed        bool

	logger *logrus.Entry
}

func (m Autocomplete) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Autocomplete) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.destroyed {
		return m, nil
	}

	switch msg := msg.(type) {
	case searchMsg:
		// 防抖期间又有输入的搜索词已过期
		if msg.id != m.id || !m.debouncer.Done(msg.seq) {
			return m, nil
		}
		return m, m.search(msg.term)

	case resultsMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.applyResults(msg)
		return m, nil

	case blurMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.finishBlur()

	// 键位操作
	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	// 光标闪烁等其他消息
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Autocomplete) handleKey(msg tea.KeyMsg) tea.Cmd {
	km := m.cfg.KeyMap
	if m.state.Open() && key.Matches(msg, km.ListenKeys()...) {
		switch {
		case key.Matches(msg, km.Next):
			m.state = m.state.MoveDown(m.cfg.MaxHeight)
			return nil
		case key.Matches(msg, km.Prev):
			m.state = m.state.MoveUp(m.cfg.MaxHeight)
			return nil
		case key.Matches(msg, km.Close):
			m.state = m.state.Close()
			return nil
		case key.Matches(msg, km.Select):
			if option, ok := m.state.Highlighted(); ok {
				m.state = m.state.Close()
				return tea.Sequence(m.commit(&option)...)
			}
		}
	}

	if m.cfg.Clearable && key.Matches(msg, km.Clear) {
		return m.Clear()
	}

	// 其他按键：更新输入框，值变化时触发搜索
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return tea.Batch(cmd, m.onInput(after))
	}
	return cmd
}

func (m *Autocomplete) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.cfg.Clearable && m.hitClearIcon(msg.X, msg.Y) {
		return m.Clear()
	}
	if m.state.Mode != ModeResults {
		return nil
	}
	index, ok := m.rowAt(msg.X, msg.Y)
	if !ok {
		return nil
	}
	option := m.state.Options[index]
	m.state = m.state.Close()
	return tea.Sequence(m.commit(&option)...)
}

// onInput 输入变化：满足最少字符数时防抖搜索，否则关闭
func (m *Autocomplete) onInput(term string) tea.Cmd {
	if !m.shouldSearch(term) {
		m.state = m.state.Close()
		return nil
	}
	id := m.id
	return m.debouncer.Tick(term, func(seq uint64, term string) tea.Msg {
		return searchMsg{id: id, seq: seq, term: term}
	})
}

func (m *Autocomplete) shouldSearch(term string) bool {
	if m.cfg.MinChars <= 0 {
		return true
	}
	return utf8.RuneCountInString(term) >= m.cfg.MinChars
}

// search 静态数据同步过滤；远程数据返回查询命令
func (m *Autocomplete) search(term string) tea.Cmd {
	if m.destroyed {
		return nil
	}
	if m.cfg.local() {
		m.render(suggest.Match(m.local, term))
		return nil
	}
	if m.fetcher == nil {
		return nil
	}

	m.reqSeq++
	seq, id := m.reqSeq, m.id
	m.logger.Debugf("查询 %q seq=%d", term, seq)
	return func() tea.Msg {
		options, err := m.Lookup(context.Background(), term)
		return resultsMsg{id: id, seq: seq, term: term, options: options, err: err}
	}
}

// Lookup 执行一次完整查询并返回匹配项，不修改界面状态
func (m *Autocomplete) Lookup(ctx context.Context, term string) ([]suggest.Option, error) {
	var candidates []suggest.Option
	switch {
	case m.cfg.local():
		candidates = m.local
	case m.fetcher != nil:
		payload, err := m.fetcher.Fetch(ctx, term)
		if err != nil {
			return nil, err
		}
		candidates = suggest.Normalize(suggest.Extract(payload), m.cfg.ItemTitle, m.cfg.ItemValue)
	}
	return suggest.Match(candidates, term), nil
}

func (m *Autocomplete) applyResults(msg resultsMsg) {
	if msg.seq != m.reqSeq {
		m.logger.Debugf("丢弃过期结果 %q seq=%d latest=%d", msg.term, msg.seq, m.reqSeq)
		return
	}
	if msg.err != nil {
		m.logger.Warnf("查询 %q 失败: %v", msg.term, msg.err)
		m.state = m.state.WithError(m.cfg.HideNoData)
		return
	}
	m.render(msg.options)
}

func (m *Autocomplete) render(options []suggest.Option) {
	m.state = m.state.WithResults(options, m.cfg.AutoSelectFirst, m.cfg.HideNoData)
}

// commit 写入输入框并返回需要依次发出的事件
func (m *Autocomplete) commit(option *suggest.Option) []tea.Cmd {
	value := ""
	if option != nil {
		value = option.Title
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.state = m.state.WithSelected(option)
	return []tea.Cmd{
		emit(SelectMsg{ID: m.id, Option: m.state.Selected}),
		emit(ChangeMsg{ID: m.id, Value: value}),
	}
}

// Focus 聚焦输入框，MinChars 为 0 时立即搜索
func (m *Autocomplete) Focus() tea.Cmd {
	cmd := m.input.Focus()
	if m.cfg.MinChars > 0 || m.destroyed {
		return cmd
	}
	return tea.Batch(cmd, m.search(m.input.Value()))
}

// Blur 失焦，等待 BlurDelay 后自动选中并关闭下拉框
func (m *Autocomplete) Blur() tea.Cmd {
	m.input.Blur()
	id := m.id
	return tea.Tick(m.cfg.BlurDelay, func(time.Time) tea.Msg {
		return blurMsg{id: id}
	})
}

func (m *Autocomplete) finishBlur() tea.Cmd {
	var cmd tea.Cmd
	if m.cfg.AutoSelectFirst && len(m.state.Options) > 0 && m.state.Selected == nil {
		first := m.state.Options[0]
		cmd = tea.Sequence(m.commit(&first)...)
	}
	m.state = m.state.Close()
	return cmd
}

// Open 使用当前输入立即搜索并显示结果
func (m *Autocomplete) Open() tea.Cmd {
	return m.search(m.input.Value())
}

// Close 关闭下拉框
func (m *Autocomplete) Close() {
	m.state = m.state.Close()
}

// Clear 清空输入与选中项
func (m *Autocomplete) Clear() tea.Cmd {
	cmds := m.commit(nil)
	m.state = m.state.Close()
	cmds = append(cmds, emit(ClearMsg{ID: m.id}), m.input.Focus())
	return tea.Sequence(cmds...)
}

// Destroy 取消进行中的查询并解除绑定，返回原输入框
func (m *Autocomplete) Destroy() textinput.Model {
	if m.destroyed {
		return m.input
	}
	m.destroyed = true
	m.debouncer.Stop()
	if m.fetcher != nil {
		m.fetcher.Cancel()
	}
	m.reqSeq++
	m.state = NewState()
	m.logger.Debug("destroyed")
	return m.input
}

// Selected 最近一次选中的项，没有则为 nil
func (m *Autocomplete) Selected() *suggest.Option {
	if m.state.Selected == nil {
		return nil
	}
	selected := *m.state.Selected
	return &selected
}

func (m *Autocomplete) ID() string {
	return m.id
}

func (m *Autocomplete) Value() string {
	return m.input.Value()
}

func (m *Autocomplete) State() State {
	return m.state
}

func (m *Autocomplete) Config() Config {
	return m.cfg
}

func (m *Autocomplete) Focused() bool {
	return m.input.Focused()
}

func (m *Autocomplete) Destroyed() bool {
	return m.destroyed
}

// SetOrigin 设置组件左上角在终端中的位置，用于鼠标点击定位
func (m *Autocomplete) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}
