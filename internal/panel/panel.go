package panel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vedantwpatil/autoclicker/internal/clicker"
	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

const (
	refreshInterval = 100 * time.Millisecond
	maxRate         = 1000.0
)

// Controller is the part of the engine the panel drives
type Controller interface {
	Toggle() error
	IsRunning() bool
	Config() clicker.Config
	UpdateConfig(clicker.Config)
	Clicks() uint64
	LastStop() clicker.StopReason
}

type Options struct {
	// Region is restored when the region is switched back on
	Region *geometry.Rect
	// Hotkey is only displayed, the listener lives elsewhere
	Hotkey string
	Log    *slog.Logger
}

// Panel is a terminal control surface for the engine
type Panel struct {
	screen tcell.Screen
	ctl    Controller
	region *geometry.Rect
	hotkey string
	log    *slog.Logger
	status string
}

func New(screen tcell.Screen, ctl Controller, opts Options) *Panel {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	p := &Panel{
		screen: screen,
		ctl:    ctl,
		hotkey: opts.Hotkey,
		log:    log,
	}
	if opts.Region != nil {
		r := *opts.Region
		p.region = &r
	} else if cfg := ctl.Config(); cfg.Region != nil {
		p.region = cfg.Region
	}
	return p
}

// Run draws the panel and handles keys until the user quits or ctx is done.
// The caller owns the screen and must Fini it afterwards.
func (p *Panel) Run(ctx context.Context) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	p.draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !p.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				p.screen.Sync()
			}
			p.draw()
		case <-ticker.C:
			p.draw()
		}
	}
}

// handleKey applies one key press, false means quit
func (p *Panel) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	p.status = ""
	cfg := p.ctl.Config()

	switch ev.Rune() {
	case 'q':
		return false
	case ' ', 't':
		if err := p.ctl.Toggle(); err != nil {
			p.status = err.Error()
			p.log.Warn("toggle failed", "error", err)
		}
		return true
	case '+', '=':
		cfg.Rate = min(cfg.Rate+1, maxRate)
	case '-', '_':
		cfg.Rate = max(cfg.Rate-1, clicker.MinRate)
	case ']':
		cfg.Repeat++
	case '[':
		if cfg.Repeat > 0 {
			cfg.Repeat--
		}
	case 'r':
		switch {
		case cfg.Region != nil:
			cfg.Region = nil
		case p.region != nil:
			r := *p.region
			cfg.Region = &r
		default:
			p.status = "no region configured"
			return true
		}
	default:
		return true
	}

	p.ctl.UpdateConfig(cfg)
	if p.ctl.IsRunning() {
		p.status = "changes apply from the next start"
	}
	p.log.Debug("config updated", "config", cfg.String())
	return true
}

func (p *Panel) lines() []string {
	cfg := p.ctl.Config()

	state := "idle"
	if p.ctl.IsRunning() {
		state = "CLICKING"
	}

	repeat := "unlimited"
	if cfg.Repeat > 0 {
		repeat = fmt.Sprintf("%d", cfg.Repeat)
	}

	region := "off"
	if cfg.Region != nil {
		region = fmt.Sprintf("%s (%dx%d)", cfg.Region, cfg.Region.Width(), cfg.Region.Height())
	}

	hotkey := p.hotkey
	if hotkey == "" {
		hotkey = "disabled"
	}

	return []string{
		"Auto Clicker",
		"",
		fmt.Sprintf("State:      %s", state),
		fmt.Sprintf("Rate:       %.0f clicks/s", cfg.Rate),
		fmt.Sprintf("Repeat:     %s", repeat),
		fmt.Sprintf("Region:     %s", region),
		fmt.Sprintf("Clicks:     %d", p.ctl.Clicks()),
		fmt.Sprintf("Last stop:  %s", p.ctl.LastStop()),
		fmt.Sprintf("Hotkey:     %s", hotkey),
		"",
		"space/t toggle   +/- rate   ]/[ repeat   r region   q quit",
		p.status,
	}
}

func (p *Panel) draw() {
	p.screen.Clear()

	base := tcell.StyleDefault
	for y, line := range p.lines() {
		style := base
		switch {
		case y == 0:
			style = base.Bold(true)
		case y == 2 && p.ctl.IsRunning():
			style = base.Foreground(tcell.ColorGreen)
		case y == 11:
			style = base.Foreground(tcell.ColorYellow)
		}
		drawText(p.screen, 1, y, line, style)
	}

	p.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
