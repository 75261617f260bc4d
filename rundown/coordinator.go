package rundown

import (
	"sync"

	"go.uber.org/zap"

	"github.com/qq6854935/terminal/interactivity"
	"github.com/qq6854935/terminal/status"
)

// Coordinator drives the terminal teardown-and-exit sequence. Any number of
// threads may race to request rundown; exactly one performs it, and none
// return.
type Coordinator struct {
	cfg     Config
	log     *zap.Logger
	exiter  Exiter
	locator *interactivity.Locator

	// gate is locked at the top of RundownAndExit and never unlocked: the
	// first caller proceeds, every later caller blocks until the process
	// exits. The race is resolved by construction, not by detection.
	gate sync.Mutex

	hookMu       sync.Mutex
	teardownHook func()
}

// NewCoordinator creates a rundown coordinator over the given locator.
func NewCoordinator(locator *interactivity.Locator, cfg Config) *Coordinator {
	if cfg.Exiter == nil {
		cfg.Exiter = OSExiter{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Coordinator{
		cfg:     cfg,
		log:     cfg.Logger,
		exiter:  cfg.Exiter,
		locator: locator,
	}
}

// SetTeardownHook registers the platform teardown hook invoked during
// rundown, before process exit. At most one hook may ever be registered;
// a second registration is a programming error and panics.
func (c *Coordinator) SetTeardownHook(fn func()) {
	c.hookMu.Lock()
	defer c.hookMu.Unlock()

	if c.teardownHook != nil {
		panic(status.FromCode(status.CodeHookAlreadySet))
	}
	c.teardownHook = fn
}

// RundownAndExit tears the process down and exits with code. It never
// returns. It may be called from any thread, any number of times,
// concurrently; one thread enters and zero threads leave alive.
//
// Every step is best-effort: a failing step never aborts the sequence. The
// renderer teardown signal and the teardown hook are both ordered before
// process exit; nothing else is promised. Services must not be constructed
// concurrently with rundown.
func (c *Coordinator) RundownAndExit(code int) {
	// The console lock can't serialize this: holding it here would stop the
	// render thread from finishing its last paint.
	c.gate.Lock()

	g := c.locator.Globals()

	// A client may die before its last output was painted. Give the
	// renderer one final chance before it is destroyed.
	if r := g.Renderer(); r != nil {
		r.TriggerTeardown()
	}

	if c.cfg.StrictTeardown {
		// Lock the console so no background task is touching the state we
		// destroy below. Intentionally held through process exit.
		if ci := g.ConsoleInformation(); ci != nil {
			ci.LockConsole()
		}
		if r := g.Renderer(); r != nil {
			if err := r.Close(); err != nil {
				c.log.Warn("renderer close failed", zap.Error(err))
			}
			g.SetRenderer(nil)
		}
	}

	c.hookMu.Lock()
	hook := c.teardownHook
	c.hookMu.Unlock()
	if hook != nil {
		hook()
	}

	if c.cfg.StrictTeardown {
		c.locator.ReleaseConsoleWindow()
	}

	c.log.Info("rundown complete", zap.Int("exit_code", code))
	c.exiter.Exit(code)

	// Exit must not return. If a test exiter does, park the winning thread
	// the way a real exit would.
	select {}
}
