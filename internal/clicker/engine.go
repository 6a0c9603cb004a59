package clicker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Engine runs the click loop on its own goroutine and is safe for concurrent use.
//
// The running flag is a single atomic word: 0 while idle, otherwise the
// generation of the active run. A loop keeps going only while the word still
// holds its own generation, so a Stop followed by a quick Start never leaves
// two loops clicking.
type Engine struct {
	mu     sync.Mutex
	config Config

	state atomic.Uint64
	seq   atomic.Uint64
	last  atomic.Pointer[run]
	// launch orders publishing the run against a newer Start
	launch sync.Mutex

	open Opener
	log  *slog.Logger
	wg   sync.WaitGroup
}

type run struct {
	gen    uint64
	config Config
	done   chan struct{}
	clicks atomic.Uint64
	reason atomic.Int32
}

type Option func(*Engine)

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

func New(config Config, open Opener, opts ...Option) *Engine {
	e := &Engine{
		config: config.Clone(),
		open:   open,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) IsRunning() bool {
	return e.state.Load() != 0
}

// Config returns a copy of the configuration the next run will use
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.config.Clone()
}

// UpdateConfig replaces the configuration. An active run keeps the one it started with.
func (e *Engine) UpdateConfig(config Config) {
	e.mu.Lock()
	e.config = config.Clone()
	e.mu.Unlock()
}

// Start launches the click loop. Calling it while a run is active does nothing.
func (e *Engine) Start() error {
	gen := e.seq.Add(1)
	if !e.state.CompareAndSwap(0, gen) {
		return nil
	}

	r := &run{
		gen:    gen,
		config: e.Config(),
		done:   make(chan struct{}),
	}

	env, err := e.open()
	if err != nil {
		e.state.CompareAndSwap(gen, 0)
		e.log.Error("clicker unavailable", "error", err)
		return fmt.Errorf("%w: %w", ErrEnvironmentUnavailable, err)
	}

	e.launch.Lock()
	defer e.launch.Unlock()

	// Stop and another Start may have run while the environment was opening
	if e.state.Load() != gen {
		e.log.Debug("clicker start superseded", "generation", gen)
		return nil
	}

	e.last.Store(r)
	e.wg.Add(1)
	go e.loop(r, env)

	e.log.Info("clicker started",
		"rate", r.config.Rate,
		"repeat", r.config.Repeat,
		"region", regionAttr(r.config),
	)
	return nil
}

// Stop ends the active run. The loop finishes its current click or sleep first.
func (e *Engine) Stop() {
	e.state.Store(0)
}

func (e *Engine) Toggle() error {
	if e.IsRunning() {
		e.Stop()
		return nil
	}
	return e.Start()
}

// Run starts the engine and blocks until the run ends on its own or ctx is done.
// If a run is already active Run attaches to it.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.Start(); err != nil {
		return err
	}

	r := e.last.Load()
	if r == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		e.Stop()
		<-r.done
		return ctx.Err()
	case <-r.done:
		return nil
	}
}

// Wait blocks until every loop started so far has returned
func (e *Engine) Wait() {
	e.wg.Wait()
}

// Clicks returns the number of clicks performed by the current or last run
func (e *Engine) Clicks() uint64 {
	if r := e.last.Load(); r != nil {
		return r.clicks.Load()
	}
	return 0
}

// LastStop reports why the last run ended, StopNone while it is still going
func (e *Engine) LastStop() StopReason {
	if r := e.last.Load(); r != nil {
		return StopReason(r.reason.Load())
	}
	return StopNone
}

func (e *Engine) loop(r *run, env Environment) {
	defer e.wg.Done()
	defer close(r.done)

	cfg := r.config
	interval := cfg.Interval()
	remaining := cfg.Repeat
	reason := StopManual

	for e.state.Load() == r.gen {
		pos := env.Pointer()
		if cfg.Region != nil && !cfg.Region.Contains(pos) {
			reason = StopRegionExit
			break
		}

		env.Click()
		r.clicks.Add(1)

		if cfg.Repeat > 0 {
			remaining--
			if remaining == 0 {
				reason = StopRepeatDone
				break
			}
		}

		env.Sleep(interval)
	}

	r.reason.Store(int32(reason))
	// only clears the flag if no newer run has taken over
	e.state.CompareAndSwap(r.gen, 0)

	e.log.Info("clicker stopped",
		"reason", reason.String(),
		"clicks", r.clicks.Load(),
	)
}

func regionAttr(cfg Config) string {
	if cfg.Region == nil {
		return "none"
	}
	return cfg.Region.String()
}
