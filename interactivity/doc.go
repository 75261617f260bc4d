// Package interactivity provides the service locator for the platform
// interactivity subsystem: a fixed set of lazily constructed,
// platform-dependent services (input thread, console control, window
// metrics, accessibility notification, high-DPI API, system configuration)
// plus a hidden pseudo window, all reached through narrow interfaces so
// callers never depend on the active platform backend.
//
// # Construction discipline
//
// Every service lives in a slot that transitions empty → occupied exactly
// once. Slots are populated one of two ways:
//
//   - Locate accessors (LocateConsoleControl, LocateHighDpiApi, ...) build
//     the instance through the platform Factory on first use and return the
//     same instance forever after. A failed construction leaves the slot
//     empty so a later call may retry.
//   - Set/Create entry points (SetConsoleWindow, CreateConsoleInputThread,
//     ...) accept or build an instance exactly once and fail with
//     ALREADY_REGISTERED afterwards. These exist for services constructed
//     by a remote caller and handed in.
//
// The pseudo window is different again: its initialization is attempted
// once and never retried, even on failure (the handle degrades to NoWindow
// permanently).
//
// # Usage
//
//	loc := interactivity.New(win32.LoadFactory,
//	    interactivity.WithLogger(log))
//
//	control, err := loc.LocateConsoleControl()
//	if err != nil {
//	    // construction failed; the slot is still empty
//	}
//
//	hwnd := loc.LocatePseudoWindow(interactivity.Desktop)
//
// # Concurrency
//
// Slot accessors hold a per-slot lock across the whole construct-then-store
// sequence, so concurrent first accesses construct exactly once. Do not call
// any accessor once rundown has begun; that ordering is the caller's
// responsibility (see the rundown package).
package interactivity
