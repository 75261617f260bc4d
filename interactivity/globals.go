package interactivity

import "sync"

// Globals is the process-lifetime state bundle shared with collaborators
// outside the locator. It exists from locator construction onward and is
// never lazily built. The locator itself only touches two members: the
// renderer handle (cleared during strict rundown) and the console
// information used to acquire the process-wide console lock.
type Globals struct {
	mu       sync.Mutex
	renderer Renderer
	console  ConsoleInformation
}

// Renderer returns the current renderer handle, or nil if none is set.
func (g *Globals) Renderer() Renderer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.renderer
}

// SetRenderer installs or replaces the renderer handle. Passing nil clears it.
func (g *Globals) SetRenderer(r Renderer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.renderer = r
}

// ConsoleInformation returns the console information bundle, or nil.
func (g *Globals) ConsoleInformation() ConsoleInformation {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.console
}

// SetConsoleInformation installs the console information bundle.
func (g *Globals) SetConsoleInformation(ci ConsoleInformation) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.console = ci
}
