package suggest

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceState is the state of a Debouncer
type DebounceState int

const (
	// DebounceIdle means no timer is armed
	DebounceIdle DebounceState = iota
	// DebouncePending means a timer is armed for a candidate value
	DebouncePending
)

func (s DebounceState) String() string {
	switch s {
	case DebounceIdle:
		return "idle"
	case DebouncePending:
		return "pending"
	default:
		return "unknown"
	}
}

// settleMsg is delivered when a debounce timer elapses
type settleMsg struct {
	owner *Debouncer
	seq   uint64
}

// Debouncer turns a stream of raw values into settled values: a value settles
// once no newer value has arrived for the quiet period. At most one timer is
// armed at any time; arming a new one cancels the previous one outright.
//
// All methods must be called from the Bubble Tea update loop.
type Debouncer struct {
	delay     time.Duration
	state     DebounceState
	seq       uint64
	candidate string
	cancel    context.CancelFunc
	closed    bool
}

// NewDebouncer creates an idle debouncer with the given quiet period
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Change records a new raw value and (re)starts the quiet-period timer.
// The returned command waits for the timer and must be run by the caller.
func (d *Debouncer) Change(value string) tea.Cmd {
	if d.closed {
		return nil
	}
	d.Stop()

	d.seq++
	d.candidate = value
	d.state = DebouncePending

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	return after(ctx, d.delay, settleMsg{owner: d, seq: d.seq})
}

// Settle consumes a timer message. It reports the settled value only for the
// currently armed timer; messages from superseded or stopped timers are ignored.
func (d *Debouncer) Settle(msg settleMsg) (string, bool) {
	if d.closed || msg.owner != d || msg.seq != d.seq || d.state != DebouncePending {
		return "", false
	}
	d.state = DebounceIdle
	d.cancel = nil
	return d.candidate, true
}

// Stop cancels the pending timer, if any, without settling
func (d *Debouncer) Stop() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.state = DebounceIdle
}

// Close stops the debouncer for good
func (d *Debouncer) Close() {
	d.Stop()
	d.closed = true
}

// State returns the current state
func (d *Debouncer) State() DebounceState {
	return d.state
}

// Candidate returns the value the pending timer would settle
func (d *Debouncer) Candidate() string {
	return d.candidate
}

// after returns a command that yields msg once delay has elapsed, or nil if
// ctx is cancelled first
func after(ctx context.Context, delay time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		if ctx.Err() != nil {
			return nil
		}
		t := time.NewTimer(delay)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if ctx.Err() != nil {
				return nil
			}
			return msg
		}
	}
}
