package console

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/clai-tools/clai/internal/ui"
)

// Animation frames - braille scan pattern
var animatorFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// eraseLine returns the cursor to column zero and clears to end of line.
const eraseLine = "\r\x1b[K"

// DefaultInterval is the delay between render iterations. It also bounds
// worst-case Stop latency, since the loop only checks for cancellation
// between ticks.
const DefaultInterval = 100 * time.Millisecond

// Animator owns the background render loop that redraws an animated
// waiting indicator in place on the terminal.
//
// At most one render loop exists at a time. Start retires any previous
// loop before spawning a new one, and Stop blocks until the loop has
// erased its line and exited. The zero value is not usable; construct
// with newAnimator.
type Animator struct {
	mu       sync.Mutex
	out      io.Writer
	interval time.Duration
	style    lipgloss.Style

	message string
	frame   int
	running bool

	// stop is the cooperative interrupt: closed to request cancellation.
	// done is the handle of the live render loop: closed when it exits.
	// Both are nil while idle; running implies done is non-nil.
	stop chan struct{}
	done chan struct{}

	// live counts render loops that have started but not yet exited.
	live atomic.Int32
}

func newAnimator(out io.Writer) *Animator {
	return &Animator{
		out:      out,
		interval: DefaultInterval,
		style:    lipgloss.NewStyle().Foreground(ui.ColorInfo),
	}
}

// Start spawns a fresh render loop displaying message. If a previous loop
// is still alive it is fully retired first, so two loops never coexist.
func (a *Animator) Start(message string) {
	a.Stop()

	a.mu.Lock()
	a.message = message
	a.frame = 0
	a.running = true
	a.stop = make(chan struct{})
	a.done = make(chan struct{})
	stop, done := a.stop, a.done
	a.mu.Unlock()

	go a.animate(stop, done)
}

// Stop interrupts the render loop and blocks until it has erased its line
// and exited. No-op when idle.
func (a *Animator) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	close(a.stop)
	done := a.done
	a.mu.Unlock()

	<-done

	a.mu.Lock()
	a.stop = nil
	a.done = nil
	a.mu.Unlock()
}

// Active reports whether a render loop is currently believed to be animating.
func (a *Animator) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running && a.done != nil
}

// Message returns the text displayed beside the animation glyph.
func (a *Animator) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

// SetMessage updates the displayed text in place without restarting the
// loop; the next render iteration picks it up.
func (a *Animator) SetMessage(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.message = message
}

// SetInterval adjusts the render cadence. Takes effect on the next Start.
func (a *Animator) SetInterval(d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if d > 0 {
		a.interval = d
	}
}

func (a *Animator) animate(stop, done chan struct{}) {
	a.live.Add(1)
	defer a.live.Add(-1)
	defer close(done)

	a.mu.Lock()
	interval := a.interval
	a.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Draw immediately so short waits still show the indicator.
	if err := a.render(); err != nil {
		a.abort()
		return
	}

	for {
		select {
		case <-stop:
			// Erase one final time and exit without drawing.
			_, _ = io.WriteString(a.out, eraseLine)
			return
		case <-ticker.C:
			if err := a.render(); err != nil {
				// The terminal became unusable; stop drawing. Foreground
				// writes will surface the same failure to the caller.
				a.abort()
				return
			}
		}
	}
}

// abort marks the animator idle when the loop exits without a Stop,
// keeping running tied to a live loop.
func (a *Animator) abort() {
	a.mu.Lock()
	a.running = false
	a.mu.Unlock()
}

// render holds the lock only for one erase-draw-increment step, never
// across the tick sleep, so foreground writes are not starved.
func (a *Animator) render() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	glyph := animatorFrames[a.frame]
	a.frame = (a.frame + 1) % len(animatorFrames)

	line := eraseLine + ui.Colorize(a.style, glyph) + " " + a.message
	_, err := io.WriteString(a.out, line)
	return err
}
