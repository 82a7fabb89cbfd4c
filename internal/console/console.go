package console

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/clai-tools/clai/internal/ui"
)

// DefaultWaitingMessage is shown when StartWaiting is called without one.
const DefaultWaitingMessage = "Thinking..."

// Console serializes all terminal output and coordinates it with the
// waiting-indicator animation. Callers never touch the Animator directly;
// Console owns it and is the only component that starts or stops it.
//
// Every public operation runs under one mutex, so writes from concurrent
// callers land in the output whole and in lock-acquisition order. While a
// waiting period is in effect, each write pauses the animation (erasing
// its line), prints, and resumes it with the unchanged message.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	waiting bool
	anim    *Animator

	// debug is set once at construction and never mutated, so Debug can
	// check it without taking the lock.
	debug bool

	// defaultMsg is shown when StartWaiting gets an empty message.
	defaultMsg string

	debugStyle lipgloss.Style
	errorStyle lipgloss.Style
}

// New creates a console writing to out. Debug output is discarded unless
// debug is true.
func New(out io.Writer, debug bool) *Console {
	return &Console{
		out:        out,
		anim:       newAnimator(out),
		debug:      debug,
		defaultMsg: DefaultWaitingMessage,
		debugStyle: lipgloss.NewStyle().Foreground(ui.ColorMuted).Faint(true),
		errorStyle: lipgloss.NewStyle().Foreground(ui.ColorError),
	}
}

// Print writes text followed by a newline. If a waiting period is in
// effect, the animation is paused around the write and resumed after.
func (c *Console) Print(text string) error {
	return c.write(text)
}

// Debug writes diagnostic text in muted styling. It is a complete no-op
// when debug output is disabled.
func (c *Console) Debug(text string) error {
	if !c.debug {
		return nil
	}
	return c.write(ui.Colorize(c.debugStyle, text))
}

// Error writes text in alert styling. Always written, debug or not.
func (c *Console) Error(text string) error {
	return c.write(ui.Colorize(c.errorStyle, text))
}

func (c *Console) write(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.waiting {
		c.anim.Stop()
	}
	_, err := io.WriteString(c.out, line+"\n")
	if c.waiting {
		c.anim.Start(c.anim.Message())
	}
	return err
}

// StartWaiting begins a waiting period, animating message beside the
// indicator. An empty message selects DefaultWaitingMessage. Calling it
// while already waiting updates the message in place without spawning a
// second render loop.
func (c *Console) StartWaiting(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if message == "" {
		message = c.defaultMsg
	}

	c.waiting = true
	if c.anim.Active() {
		c.anim.SetMessage(message)
		return
	}
	c.anim.Start(message)
}

// StopWaiting ends the waiting period and erases the indicator line.
// Idempotent: calling it while idle does nothing.
func (c *Console) StopWaiting() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.waiting {
		return
	}
	c.waiting = false
	c.anim.Stop()
}

// Waiting reports caller intent: true between StartWaiting and its
// matching StopWaiting, even while the animation is transiently paused
// for an interleaved write.
func (c *Console) Waiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waiting
}

// WaitingMessage returns the message of the current waiting period, or
// "" when idle.
func (c *Console) WaitingMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.waiting {
		return ""
	}
	return c.anim.Message()
}

// Active reports whether the render loop is animating right now.
// Collaborators that read input use it to pick a path that does not
// fight the indicator for the cursor. Observation is serialized under
// the governing lock, so the transient pause inside an interleaved
// write is never visible.
func (c *Console) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.anim.Active()
}

// DebugEnabled reports whether Debug produces output.
func (c *Console) DebugEnabled() bool {
	return c.debug
}

// SetInterval adjusts the animation cadence; applied when the render
// loop is next started.
func (c *Console) SetInterval(d time.Duration) {
	c.anim.SetInterval(d)
}

// SetDefaultMessage overrides the text used when StartWaiting gets an
// empty message.
func (c *Console) SetDefaultMessage(message string) {
	if message == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultMsg = message
}
