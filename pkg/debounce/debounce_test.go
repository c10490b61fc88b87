package debounce

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type recorder struct {
	mu    sync.Mutex
	calls []int
}

func (r *recorder) record(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.calls...)
}

// Test: 窗口内连续调用 5 次，只执行一次且使用最后一次的参数
func TestFunc_BurstRunsOnceWithLastArgument(t *testing.T) {
	r := &recorder{}
	call := Func(30*time.Millisecond, r.record)

	for i := 1; i <= 5; i++ {
		call(i)
	}
	time.Sleep(150 * time.Millisecond)

	got := r.snapshot()
	if len(got) != 1 {
		t.Fatalf("calls: got %v, want exactly one", got)
	}
	if got[0] != 5 {
		t.Fatalf("argument: got %d, want 5", got[0])
	}
}

func TestDebouncer_EachCallResetsTimer(t *testing.T) {
	r := &recorder{}
	d := New(40*time.Millisecond, r.record)

	d.Call(1)
	time.Sleep(20 * time.Millisecond)
	d.Call(2)
	time.Sleep(20 * time.Millisecond)
	if got := r.snapshot(); len(got) != 0 {
		t.Fatalf("fired too early: %v", got)
	}
	if !d.Pending() {
		t.Fatalf("expected a pending call")
	}

	time.Sleep(100 * time.Millisecond)
	if got := r.snapshot(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("calls: got %v, want [2]", got)
	}
	if d.Pending() {
		t.Fatalf("nothing should be pending after firing")
	}
}

func TestDebouncer_SeparateBurstsRunSeparately(t *testing.T) {
	r := &recorder{}
	d := New(10*time.Millisecond, r.record)

	d.Call(1)
	time.Sleep(60 * time.Millisecond)
	d.Call(2)
	time.Sleep(60 * time.Millisecond)

	if got := r.snapshot(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("calls: got %v, want [1 2]", got)
	}
}

func TestDebouncer_StopDropsPendingCall(t *testing.T) {
	r := &recorder{}
	d := New(20*time.Millisecond, r.record)

	d.Call(1)
	d.Stop()
	d.Call(2)
	time.Sleep(80 * time.Millisecond)

	if got := r.snapshot(); len(got) != 0 {
		t.Fatalf("stopped debouncer ran: %v", got)
	}
}

type tickMsg struct {
	seq uint64
	v   int
}

func tickOf(seq uint64, v int) tea.Msg {
	return tickMsg{seq: seq, v: v}
}

// Test: 多次 Tick 只有最后一次的消息被 Done 接受
func TestDebouncer_TickOnlyLatestIsDone(t *testing.T) {
	d := New[int](time.Millisecond, nil)

	var cmds []tea.Cmd
	for i := 1; i <= 5; i++ {
		cmds = append(cmds, d.Tick(i, tickOf))
	}
	if !d.Pending() {
		t.Fatalf("expected a pending tick")
	}

	var done []int
	for _, cmd := range cmds {
		msg := cmd().(tickMsg)
		if d.Done(msg.seq) {
			done = append(done, msg.v)
		}
	}
	if len(done) != 1 || done[0] != 5 {
		t.Fatalf("done: got %v, want [5]", done)
	}
	if d.Pending() {
		t.Fatalf("nothing should be pending after done")
	}
}

// Test: 消息送达前又有新的 Tick，旧消息失效
func TestDebouncer_TickSupersededBeforeDelivery(t *testing.T) {
	d := New[int](time.Millisecond, nil)

	first := d.Tick(1, tickOf)().(tickMsg)
	second := d.Tick(2, tickOf)
	if d.Done(first.seq) {
		t.Fatalf("superseded tick accepted")
	}
	if msg := second().(tickMsg); !d.Done(msg.seq) || msg.v != 2 {
		t.Fatalf("latest tick rejected: %+v", msg)
	}
}

func TestDebouncer_TickAfterStop(t *testing.T) {
	d := New[int](time.Millisecond, nil)
	msg := d.Tick(1, tickOf)().(tickMsg)
	d.Stop()
	if d.Done(msg.seq) {
		t.Fatalf("stopped debouncer accepted a tick")
	}
	if cmd := d.Tick(2, tickOf); cmd != nil {
		t.Fatalf("stopped debouncer returned a command")
	}
}
