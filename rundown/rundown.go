package rundown

import (
	"os"

	"go.uber.org/zap"
)

// Exiter terminates the process. It is injectable so the single-winner
// property of RundownAndExit can be exercised in tests; production code
// uses OSExiter.
type Exiter interface {
	// Exit ends the process with the given status. It must not return.
	Exit(code int)
}

// OSExiter terminates via os.Exit.
type OSExiter struct{}

// Exit implements Exiter.
func (OSExiter) Exit(code int) {
	os.Exit(code)
}

// Config configures the rundown coordinator.
type Config struct {
	// StrictTeardown selects full cleanup during rundown: the console lock
	// is taken (and held through exit), the renderer is destroyed and its
	// handle cleared, and the console-window slot is released. When false,
	// those objects are deliberately leaked — the process is exiting anyway,
	// and destructor ordering races during abrupt shutdown have historically
	// turned into deadlocks. Verification builds should run strict.
	StrictTeardown bool

	// Exiter terminates the process. Defaults to OSExiter.
	Exiter Exiter

	// Logger for rundown diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultConfig returns the production configuration: leak-safe teardown,
// real process exit.
func DefaultConfig() Config {
	return Config{}
}
