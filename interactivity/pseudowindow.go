package interactivity

import "go.uber.org/zap"

// LocatePseudoWindow returns the pseudo console window, creating it on the
// first call. owner is honored only on that first call; afterwards the
// stored handle is returned unconditionally.
//
// Initialization is permanent: if the factory cannot be loaded or the
// platform refuses to create the window, the handle degrades to NoWindow
// and is never retried. This differs from the service slots on purpose.
func (l *Locator) LocatePseudoWindow(owner WindowHandle) WindowHandle {
	l.pseudoMu.Lock()
	defer l.pseudoMu.Unlock()

	if l.pseudoWindowInitialized {
		return l.pseudoWindow
	}

	f, err := l.ensureFactory()
	if err == nil {
		hwnd, cerr := f.CreatePseudoWindow(owner)
		if cerr != nil {
			err = cerr
			hwnd = NoWindow
		}
		l.pseudoWindow = hwnd
	}
	l.pseudoWindowInitialized = true

	if err != nil {
		l.log.Warn("pseudo window creation failed",
			zap.String("kind", KindPseudoWindow.String()),
			zap.Error(err))
	}
	return l.pseudoWindow
}

// SetPseudoWindowCallback installs a callback invoked when an attached
// client shows or hides the pseudo console window, so the event can be
// translated and forwarded to the hosting terminal.
//
// The pseudo window is set up first; we don't need the handle, just the
// setup steps, so the factory exists to receive the callback.
func (l *Locator) SetPseudoWindowCallback(fn func(visible bool)) {
	_ = l.LocatePseudoWindow(Desktop)

	if f := l.currentFactory(); f != nil {
		f.SetPseudoWindowCallback(fn)
	}
}
