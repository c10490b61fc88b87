// Package debounce 将短时间内的连续调用合并为最后一次调用。
package debounce

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Debouncer 最后一次调用后等待 wait 没有新的调用时才执行，最多只有一次调用在等待。
//
// Call 在定时器中直接执行 fn；Tick 通过 bubbletea 定时器把消息送回 Update，
// 收到消息后用 Done 确认是否仍是最新一次调用。
type Debouncer[T any] struct {
	mu      sync.Mutex
	wait    time.Duration
	fn      func(T)
	timer   *time.Timer
	ticking bool
	gen     uint64
	stopped bool
}

// New fn 可以为 nil，此时只能使用 Tick
func New[T any](wait time.Duration, fn func(T)) *Debouncer[T] {
	if wait < 0 {
		wait = 0
	}
	return &Debouncer[T]{wait: wait, fn: fn}
}

// Func 返回防抖后的 fn
func Func[T any](wait time.Duration, fn func(T)) func(T) {
	return New(wait, fn).Call
}

// Call 安排执行 fn(v)，替换等待中的调用
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	gen := d.next()
	d.timer = time.AfterFunc(d.wait, func() {
		d.fire(gen, v)
	})
}

// Tick 返回等待 wait 后发出 msg(seq, v) 的命令，之前的 Call 和 Tick 全部失效
func (d *Debouncer[T]) Tick(v T, msg func(seq uint64, v T) tea.Msg) tea.Cmd {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return nil
	}
	seq := d.next()
	d.ticking = true
	return tea.Tick(d.wait, func(time.Time) tea.Msg {
		return msg(seq, v)
	})
}

// Done 处理 Tick 发出的消息，seq 是最新一次调用时返回 true
func (d *Debouncer[T]) Done(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || seq != d.gen {
		return false
	}
	d.ticking = false
	return true
}

// next 调用方持有锁
func (d *Debouncer[T]) next() uint64 {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.ticking = false
	d.gen++
	return d.gen
}

func (d *Debouncer[T]) fire(gen uint64, v T) {
	d.mu.Lock()
	// 定时器触发时已有新的调用或已停止
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	if d.fn != nil {
		d.fn(v)
	}
}

// Pending 是否有等待中的调用
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil || d.ticking
}

// Stop 丢弃等待中的调用，之后的调用全部忽略
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.gen++
	d.ticking = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
