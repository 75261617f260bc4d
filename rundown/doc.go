// Package rundown provides the single-shot teardown-and-exit sequence for
// the interactivity subsystem.
//
// # Overview
//
// RundownAndExit is terminal: it signals the renderer to flush its last
// frame, optionally performs full cleanup, invokes the platform teardown
// hook, and ends the process. Concurrent callers are serialized by a
// one-shot exclusive gate that the winner never releases — late callers
// block until the process exits, which resolves the shutdown race by
// construction instead of rejecting late-comers.
//
// # Strict vs leak-safe teardown
//
// Under StrictTeardown the coordinator takes the process-wide console lock,
// destroys the renderer, and releases the console window, catching leaks
// and corruption early. The default leaves those objects alive: the process
// is exiting anyway, and tearing them down during an abrupt shutdown has
// historically deadlocked. Both behaviors live behind a runtime flag so both
// are testable in the same binary.
//
// # Usage
//
//	coord := rundown.NewCoordinator(loc, rundown.Config{
//	    StrictTeardown: cfg.Rundown.StrictTeardown,
//	    Logger:         log,
//	})
//	coord.SetTeardownHook(platform.Teardown)
//
//	// from any thread, any number of times:
//	coord.RundownAndExit(0) // never returns
package rundown
