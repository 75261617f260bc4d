package interactivity

import "time"

// ServiceKind identifies one of the fixed set of platform capabilities the
// locator manages. Kinds are used for diagnostics and status reporting.
type ServiceKind string

const (
	KindConsoleControl              ServiceKind = "console-control"
	KindConsoleInputThread          ServiceKind = "console-input-thread"
	KindConsoleWindow               ServiceKind = "console-window"
	KindWindowMetrics               ServiceKind = "window-metrics"
	KindAccessibilityNotifier       ServiceKind = "accessibility-notifier"
	KindHighDpiApi                  ServiceKind = "high-dpi-api"
	KindSystemConfigurationProvider ServiceKind = "system-configuration-provider"
	KindPseudoWindow                ServiceKind = "pseudo-window"
)

// String returns the string representation of the kind.
func (k ServiceKind) String() string {
	return string(k)
}

// WindowHandle is an opaque platform window handle.
type WindowHandle uintptr

// NoWindow is the platform's "no window" sentinel. A pseudo window whose
// construction failed carries this handle permanently.
const NoWindow WindowHandle = 0

// Desktop is the owner handle used when the pseudo window has no real owner.
const Desktop WindowHandle = 0

// IsZero reports whether the handle is the no-window sentinel.
func (h WindowHandle) IsZero() bool {
	return h == NoWindow
}

// Rect is a rectangle in pixel coordinates.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// ConsoleControl brokers process-level console notifications with the
// platform (foreground state, application lifetime, task termination).
type ConsoleControl interface {
	NotifyConsoleApplication(processID uint32) error
	SetForeground(processID uint32, foreground bool) error
	EndTask(processID uint32, eventType uint32, flags uint32) error
}

// ConsoleInputThread pumps platform input for the console.
type ConsoleInputThread interface {
	// Start launches the input pump and returns its thread ID.
	Start() (uint32, error)
	ThreadID() uint32
}

// ConsoleWindow is the visible (or pseudo-visible) console window.
type ConsoleWindow interface {
	Handle() WindowHandle
	IsInFullscreen() bool
	SetIsFullscreen(fullscreen bool)
}

// WindowMetrics reports platform limits for console window sizing.
type WindowMetrics interface {
	MaxClientRect() (Rect, error)
	MinClientRect() (Rect, error)
}

// AccessibilityNotifier forwards console state changes to platform
// accessibility services.
type AccessibilityNotifier interface {
	NotifyCaretEvent(r Rect)
	NotifyLayoutEvent()
}

// HighDpiApi configures per-monitor DPI awareness for the process.
type HighDpiApi interface {
	EnablePerMonitorAwareness() error
	EnableChildWindowDpiMessage(w WindowHandle, enable bool) bool
}

// SystemConfigurationProvider reads user/system preferences that affect
// console behavior.
type SystemConfigurationProvider interface {
	IsCaretBlinkingEnabled() bool
	CaretBlinkTime() time.Duration
	NumberOfMouseButtons() int
}

// Renderer is the narrow view of the render engine the locator needs during
// rundown: one last paint signal, then destruction.
type Renderer interface {
	// TriggerTeardown gives the renderer a final chance to flush pending
	// output. It is expected to return promptly; no timeout is enforced here.
	TriggerTeardown()
	Close() error
}

// ConsoleInformation exposes the process-wide console lock.
type ConsoleInformation interface {
	LockConsole()
	UnlockConsole()
}

// Factory constructs concrete platform instances for every service kind and
// for the pseudo window. Exactly one Factory is live per Locator.
type Factory interface {
	CreateConsoleControl() (ConsoleControl, error)
	CreateConsoleInputThread() (ConsoleInputThread, error)
	CreateWindowMetrics() (WindowMetrics, error)
	CreateAccessibilityNotifier() (AccessibilityNotifier, error)
	CreateHighDpiApi() (HighDpiApi, error)
	CreateSystemConfigurationProvider() (SystemConfigurationProvider, error)

	// CreatePseudoWindow creates the hidden window used as an event anchor
	// when no real window exists. owner is honored only on the first call.
	CreatePseudoWindow(owner WindowHandle) (WindowHandle, error)

	// SetPseudoWindowCallback installs the show/hide notification callback.
	// Re-registration semantics are up to the factory.
	SetPseudoWindowCallback(fn func(visible bool))
}

// FactoryLoader selects and constructs the platform Factory. It is invoked
// lazily, and again on a later call if a previous load failed.
type FactoryLoader func() (Factory, error)
