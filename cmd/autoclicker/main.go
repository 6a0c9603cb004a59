package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/vedantwpatil/autoclicker/internal/clicker"
	"github.com/vedantwpatil/autoclicker/internal/config"
	"github.com/vedantwpatil/autoclicker/internal/display"
	"github.com/vedantwpatil/autoclicker/internal/hotkey"
	"github.com/vedantwpatil/autoclicker/internal/panel"
	"github.com/vedantwpatil/autoclicker/internal/tracking"
)

type Application struct {
	config   *config.Config
	headless bool
	engine   *clicker.Engine
	log      *slog.Logger
	logFile  io.Closer
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewApplication(cfg *config.Config, headless bool) (*Application, error) {
	log, closer, err := newLogger(cfg, headless)
	if err != nil {
		return nil, err
	}

	clickerConfig, err := cfg.Clicker(display.System)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Application{
		config:   cfg,
		headless: headless,
		engine:   clicker.New(clickerConfig, openRobot, clicker.WithLogger(log)),
		log:      log,
		logFile:  closer,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

func openRobot() (clicker.Environment, error) {
	robot, err := tracking.OpenRobot()
	if err != nil {
		return nil, err
	}
	return robot, nil
}

func (app *Application) Run() error {
	defer app.cleanup()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go app.handleSignals(sigChan)

	if err := app.startHotkey(); err != nil {
		return err
	}

	if app.headless {
		return app.runHeadless()
	}
	return app.runPanel()
}

func (app *Application) startHotkey() error {
	if app.config.Hotkey == "" {
		return nil
	}

	combo, err := hotkey.Parse(app.config.Hotkey)
	if err != nil {
		return err
	}

	listener := hotkey.NewListener(combo, func() {
		if err := app.engine.Toggle(); err != nil {
			app.log.Warn("hotkey toggle failed", "error", err)
		}
	}, app.log)

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		listener.Run(app.ctx)
	}()
	return nil
}

// runHeadless clicks until the run ends on its own, the hotkey stops it, or a signal arrives
func (app *Application) runHeadless() error {
	err := app.engine.Run(app.ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	app.log.Info("run finished",
		"reason", app.engine.LastStop().String(),
		"clicks", app.engine.Clicks(),
	)
	return nil
}

func (app *Application) runPanel() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	defer screen.Fini()

	p := panel.New(screen, app.engine, app.panelOptions())
	p.Run(app.ctx)
	return nil
}

// panelOptions takes the region from the engine, where a display index has
// already been resolved into bounds
func (app *Application) panelOptions() panel.Options {
	return panel.Options{
		Region: app.engine.Config().Region,
		Hotkey: app.config.Hotkey,
		Log:    app.log,
	}
}

// handleSignals stops an active run first, a signal while idle shuts the application down
func (app *Application) handleSignals(sigChan chan os.Signal) {
	for sig := range sigChan {
		app.log.Info("received signal", "signal", sig.String())
		if app.engine.IsRunning() {
			app.engine.Stop()
			continue
		}
		app.cancel()
		return
	}
}

// cleanup silences the hotkey before stopping the engine so no press can start a new run
func (app *Application) cleanup() {
	app.cancel()
	app.wg.Wait()
	app.engine.Stop()
	app.engine.Wait()
	if app.logFile != nil {
		app.logFile.Close()
	}
}

// newLogger writes to stderr when headless. The panel owns the terminal, so
// otherwise logs go to the configured file.
func newLogger(cfg *config.Config, headless bool) (*slog.Logger, io.Closer, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if headless {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil, nil
	}
	if cfg.Log.File == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}

func loadConfig(opts *options) (*config.Config, error) {
	if err := config.LoadEnv(opts.envPath); err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := opts.apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "autoclicker: %v\n", err)
		os.Exit(1)
	}

	app, err := NewApplication(cfg, opts.headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "autoclicker: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "autoclicker: %v\n", err)
		os.Exit(1)
	}
}
