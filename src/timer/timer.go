package timer

import (
	"time"

	"github.com/eiannone/keyboard"
)

// Pacer slows a simulation down for a watching user. Wait is called once per tick.
type Pacer interface {
	Wait()
}

// NewPacer returns a pacer that waits interval per tick, or one that never waits if interval is not positive.
func NewPacer(interval time.Duration) Pacer {
	if interval <= 0 {
		return NoPacer{}
	}
	t := time.NewTimer(interval)
	t.Stop()
	return &TickPacer{timer: t, interval: interval}
}

type NoPacer struct{}

func (NoPacer) Wait() {}

// TickPacer waits a fixed interval per tick.
type TickPacer struct {
	timer    *time.Timer
	interval time.Duration
}

func (p *TickPacer) Wait() {
	resetTimer(p.timer, p.interval)
	<-p.timer.C
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

// KeyPacer waits for a key press per tick. Ctrl-C, Esc and q call Quit.
type KeyPacer struct {
	Quit func()
}

func (p KeyPacer) Wait() {
	char, key, err := keyboard.GetSingleKey()
	if err != nil {
		return
	}
	if key == keyboard.KeyCtrlC || key == keyboard.KeyEsc || char == 'q' {
		if p.Quit != nil {
			p.Quit()
		}
	}
}
