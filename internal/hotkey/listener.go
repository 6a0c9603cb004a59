package hotkey

import (
	"context"
	"log/slog"
	"sync"
	"time"

	hook "github.com/robotn/gohook"
)

// DebounceWindow swallows key repeats while the combo is held down
const DebounceWindow = 300 * time.Millisecond

// Listener calls its action whenever the combo is pressed anywhere on the desktop
type Listener struct {
	combo  Combo
	action func()
	log    *slog.Logger

	mu     sync.Mutex
	window time.Duration
	last   time.Time
}

func NewListener(combo Combo, action func(), log *slog.Logger) *Listener {
	return &Listener{
		combo:  combo,
		action: action,
		log:    log,
		window: DebounceWindow,
	}
}

// Run blocks until ctx is cancelled. The global hook is torn down on return.
func (l *Listener) Run(ctx context.Context) {
	hook.Register(hook.KeyDown, l.combo.Keys(), func(hook.Event) {
		l.press(time.Now())
	})

	evChan := hook.Start()
	done := hook.Process(evChan)
	l.log.Info("hotkey listening", "combo", l.combo.String())

	select {
	case <-ctx.Done():
		hook.End()
		<-done
	case <-done:
	}

	l.log.Info("hotkey stopped")
}

// press runs the action unless the previous press is still inside the window
func (l *Listener) press(now time.Time) bool {
	l.mu.Lock()
	if !l.last.IsZero() && now.Sub(l.last) < l.window {
		l.mu.Unlock()
		return false
	}
	l.last = now
	l.mu.Unlock()

	l.log.Debug("hotkey pressed", "combo", l.combo.String())
	l.action()
	return true
}
