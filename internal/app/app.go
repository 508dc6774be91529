package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gamzabox/humble-line/internal/config"
	"github.com/gamzabox/humble-line/internal/logging"
)

// Options configures App creation.
type Options struct {
	Store   config.Store
	Input   io.Reader
	Output  io.Writer
	HomeDir string
	// Prompt and HistoryCapacity override the configured values when set.
	Prompt          string
	HistoryCapacity int
	// IsExit decides whether a submitted line ends the session. It defaults
	// to matching the configured exit command.
	IsExit     func(line string) bool
	KeyEvents  bool
	Interrupts chan os.Signal
}

// App coordinates CLI behaviour.
type App struct {
	output    io.Writer
	prompt    string
	isExit    func(string) bool
	keyEvents bool

	logger  *logging.Logger
	session *Session
	reader  lineReader

	mu            sync.Mutex
	exitRequested bool

	signalCh   chan os.Signal
	stopSignal func()
}

// New constructs an App from options.
func New(opts Options) (*App, error) {
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}
	if opts.Input == nil {
		return nil, errors.New("input is required")
	}
	if opts.Output == nil {
		return nil, errors.New("output is required")
	}
	if opts.HistoryCapacity < 0 {
		return nil, fmt.Errorf("invalid history capacity %d", opts.HistoryCapacity)
	}

	home := opts.HomeDir
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determine home dir: %w", err)
		}
		home = dir
	}

	cfg, err := opts.Store.Load()
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return nil, err
		}
		cfg = config.Config{}
	}
	if opts.Prompt != "" {
		cfg.Prompt = opts.Prompt
	}
	if opts.HistoryCapacity > 0 {
		cfg.HistoryCapacity = opts.HistoryCapacity
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.NewLogger(filepath.Join(config.Dir(home), "logs"), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	isExit := opts.IsExit
	if isExit == nil {
		exitCommand := cfg.EffectiveExitCommand()
		isExit = func(line string) bool {
			return strings.TrimSpace(line) == exitCommand
		}
	}

	app := &App{
		output:    opts.Output,
		prompt:    cfg.EffectivePrompt(),
		isExit:    isExit,
		keyEvents: opts.KeyEvents,
		logger:    logger,
		session:   NewSession(cfg.EffectiveHistoryCapacity(), logger.Named("session")),
	}
	app.reader = createLineReader(opts.Input, opts.Output, app.session, app.requestExit)
	app.setupSignals(opts.Interrupts)

	return app, nil
}

func (a *App) setupSignals(ch chan os.Signal) {
	if ch != nil {
		a.signalCh = ch
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	a.signalCh = sigCh
	a.stopSignal = func() { signal.Stop(sigCh) }
}

// watchSignals turns interrupts into an exit request until done is closed.
func (a *App) watchSignals(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case _, ok := <-a.signalCh:
			if !ok {
				return
			}
			a.logger.Infof("interrupt received")
			a.requestExit()
		}
	}
}

// Run starts the interactive loop, or the key-event viewer when requested.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		_ = a.logger.Close()
	}()
	defer func() {
		if a.stopSignal != nil {
			a.stopSignal()
		}
	}()

	done := make(chan struct{})
	var watcher sync.WaitGroup
	watcher.Add(1)
	go func() {
		defer watcher.Done()
		a.watchSignals(done)
	}()
	defer func() {
		close(done)
		watcher.Wait()
	}()

	if a.keyEvents {
		a.logger.Infof("starting key event viewer")
		return RunKeyEvents(a.logger.Named("keys"))
	}

	a.logger.Infof("session started (history capacity %d)", a.session.History().Capacity())
	for {
		if ctx.Err() != nil || a.shouldExit() {
			return nil
		}

		line, err := a.reader.ReadLine(a.prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.logger.Infof("input closed")
				return nil
			}
			a.logger.Errorf("read line: %v", err)
			return err
		}

		if a.isExit(line) {
			a.logger.Infof("exit command received")
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := fmt.Fprintf(a.output, "You typed: %s\n", line); err != nil {
			return err
		}
	}
}

func (a *App) requestExit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.exitRequested = true
}

func (a *App) shouldExit() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exitRequested
}
