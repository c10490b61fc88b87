package typeahead

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wxnacy/typeahead/pkg/suggest"
)

func options(titles ...string) []suggest.Option {
	return suggest.Normalize(suggest.Strings(titles...), "title", "value")
}

func TestState_WithResults(t *testing.T) {
	s := NewState().WithResults(options("a", "b"), false, true)
	assert.Equal(t, ModeResults, s.Mode)
	assert.Equal(t, -1, s.Highlight)
	assert.True(t, s.Open())

	// 默认高亮第一项
	s = NewState().WithResults(options("a", "b"), true, true)
	assert.Equal(t, 0, s.Highlight)

	// 空结果
	s = NewState().WithResults(nil, true, false)
	assert.Equal(t, ModeNoData, s.Mode)
	assert.Empty(t, s.Options)
	assert.Equal(t, -1, s.Highlight)

	s = NewState().WithResults(nil, false, true)
	assert.Equal(t, ModeClosed, s.Mode)
	assert.False(t, s.Open())
}

func TestState_WithError(t *testing.T) {
	s := NewState().WithResults(options("a"), true, false).WithError(false)
	assert.Equal(t, ModeError, s.Mode)
	assert.Empty(t, s.Options)
	assert.Equal(t, -1, s.Highlight)

	s = NewState().WithError(true)
	assert.Equal(t, ModeClosed, s.Mode)
}

func TestState_Move(t *testing.T) {
	s := NewState().WithResults(options("a", "b", "c"), false, true)

	s = s.MoveDown(0)
	assert.Equal(t, 0, s.Highlight)
	s = s.MoveDown(0).MoveDown(0).MoveDown(0)
	assert.Equal(t, 2, s.Highlight, "停在最后一项")

	s = s.MoveUp(0).MoveUp(0).MoveUp(0)
	assert.Equal(t, 0, s.Highlight, "停在第一项")

	// 没有高亮时向上移动落到第一项
	s = NewState().WithResults(options("a", "b"), false, true).MoveUp(0)
	assert.Equal(t, 0, s.Highlight)

	// 没有候选项时不移动
	s = NewState().MoveDown(0)
	assert.Equal(t, -1, s.Highlight)
}

func TestState_Scroll(t *testing.T) {
	s := NewState().WithResults(options("a", "b", "c", "d", "e"), false, true)
	for i := 0; i < 4; i++ {
		s = s.MoveDown(2)
	}
	assert.Equal(t, 3, s.Highlight)
	assert.Equal(t, 2, s.Offset)
	start, end := s.Window(2)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)

	s = s.MoveUp(2).MoveUp(2)
	assert.Equal(t, 1, s.Highlight)
	assert.Equal(t, 1, s.Offset)

	start, end = s.Window(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}

func TestState_CloseKeepsOptions(t *testing.T) {
	s := NewState().WithResults(options("a", "b"), true, true).Close()
	assert.False(t, s.Open())
	assert.Len(t, s.Options, 2)
}

func TestState_WithSelectedCopies(t *testing.T) {
	o := suggest.Option{Title: "a", Value: "a"}
	s := NewState().WithSelected(&o)
	o.Title = "changed"
	if assert.NotNil(t, s.Selected) {
		assert.Equal(t, "a", s.Selected.Title)
	}
	assert.Nil(t, s.WithSelected(nil).Selected)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "closed", ModeClosed.String())
	assert.Equal(t, "results", ModeResults.String())
	assert.Equal(t, "no-data", ModeNoData.String())
	assert.Equal(t, "error", ModeError.String())
	assert.Equal(t, "unknown", Mode(42).String())
}
