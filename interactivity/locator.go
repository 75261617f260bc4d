package interactivity

import (
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qq6854935/terminal/status"
)

var errNilFactory = errors.New("factory loader returned nil")

// Locator holds one instance of each platform service plus the factory that
// builds them. Each service is created at most once, on first use; callers
// receive borrowed handles and never own the instances.
//
// Do not construct new services once rundown has begun; the locator does not
// defend against that race.
type Locator struct {
	id     string
	log    *zap.Logger
	loader FactoryLoader

	factoryMu sync.Mutex
	factory   Factory

	globals Globals

	consoleControl        slot[ConsoleControl]
	consoleInputThread    slot[ConsoleInputThread]
	consoleWindow         slot[ConsoleWindow]
	windowMetrics         slot[WindowMetrics]
	accessibilityNotifier slot[AccessibilityNotifier]
	highDpiApi            slot[HighDpiApi]
	systemConfig          slot[SystemConfigurationProvider]

	pseudoMu                sync.Mutex
	pseudoWindow            WindowHandle
	pseudoWindowInitialized bool
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithLogger sets the logger used for construction diagnostics.
// Defaults to a no-op logger.
func WithLogger(log *zap.Logger) LocatorOption {
	return func(l *Locator) {
		if log != nil {
			l.log = log
		}
	}
}

// New creates a Locator that builds platform services through loader.
func New(loader FactoryLoader, opts ...LocatorOption) *Locator {
	l := &Locator{
		id:     uuid.NewString(),
		log:    zap.NewNop(),
		loader: loader,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With(zap.String("locator", l.id))
	return l
}

// ID returns the locator's instance identifier, as carried in its log fields.
func (l *Locator) ID() string {
	return l.id
}

// Globals returns the process-lifetime state bundle.
func (l *Locator) Globals() *Globals {
	return &l.globals
}

// ensureFactory loads the platform factory on first use. Exactly one factory
// is ever live; a failed load is reported to the caller and attempted again
// on the next accessor that needs it.
func (l *Locator) ensureFactory() (Factory, error) {
	l.factoryMu.Lock()
	defer l.factoryMu.Unlock()

	if l.factory != nil {
		return l.factory, nil
	}
	if l.loader == nil {
		return nil, status.FactoryUnavailable(errors.New("no factory loader configured"))
	}
	f, err := l.loader()
	if err != nil {
		return nil, status.FactoryUnavailable(err)
	}
	if f == nil {
		return nil, status.FactoryUnavailable(errNilFactory)
	}
	l.factory = f
	l.log.Debug("interactivity factory loaded")
	return f, nil
}

// currentFactory returns the factory if it has been loaded, without loading.
func (l *Locator) currentFactory() Factory {
	l.factoryMu.Lock()
	defer l.factoryMu.Unlock()
	return l.factory
}

// locate is the shared get-or-create path: ensure the factory, build the
// requested kind, store it. Failures leave the slot empty and are logged
// for diagnostics before being returned.
func locate[T any](l *Locator, s *slot[T], kind ServiceKind, create func(Factory) (T, error)) (T, error) {
	v, err := s.getOrCreate(func() (T, error) {
		var zero T
		f, ferr := l.ensureFactory()
		if ferr != nil {
			return zero, ferr
		}
		inst, cerr := create(f)
		if cerr != nil {
			return zero, status.CreateFailed(kind.String(), cerr)
		}
		return inst, nil
	})
	if err != nil {
		l.log.Warn("service construction failed",
			zap.String("kind", kind.String()),
			zap.Error(err))
	}
	return v, err
}

// SetConsoleControl hands in an externally constructed console control.
// The locator takes ownership; the slot can never be populated again.
func (l *Locator) SetConsoleControl(control ConsoleControl) error {
	if control == nil {
		return status.InvalidInstance(KindConsoleControl.String())
	}
	if !l.consoleControl.setIfEmpty(control) {
		return status.AlreadyRegistered(KindConsoleControl.String())
	}
	return nil
}

// SetConsoleWindow hands in an externally constructed console window.
func (l *Locator) SetConsoleWindow(window ConsoleWindow) error {
	if window == nil {
		return status.InvalidInstance(KindConsoleWindow.String())
	}
	if !l.consoleWindow.setIfEmpty(window) {
		return status.AlreadyRegistered(KindConsoleWindow.String())
	}
	return nil
}

// CreateConsoleInputThread builds the console input thread through the
// factory and stores it. Unlike the Locate accessors this is a one-shot
// constructor: a second call fails with ALREADY_REGISTERED rather than
// returning the existing instance.
func (l *Locator) CreateConsoleInputThread() (ConsoleInputThread, error) {
	v, occupied, err := l.consoleInputThread.createIfEmpty(func() (ConsoleInputThread, error) {
		f, ferr := l.ensureFactory()
		if ferr != nil {
			return nil, ferr
		}
		thread, cerr := f.CreateConsoleInputThread()
		if cerr != nil {
			return nil, status.CreateFailed(KindConsoleInputThread.String(), cerr)
		}
		return thread, nil
	})
	if occupied {
		return nil, status.AlreadyRegistered(KindConsoleInputThread.String())
	}
	if err != nil {
		l.log.Warn("service construction failed",
			zap.String("kind", KindConsoleInputThread.String()),
			zap.Error(err))
		return nil, err
	}
	return v, nil
}

// CreateAccessibilityNotifier builds the accessibility notifier through the
// factory. One-shot, like CreateConsoleInputThread.
func (l *Locator) CreateAccessibilityNotifier() error {
	_, occupied, err := l.accessibilityNotifier.createIfEmpty(func() (AccessibilityNotifier, error) {
		f, ferr := l.ensureFactory()
		if ferr != nil {
			return nil, ferr
		}
		notifier, cerr := f.CreateAccessibilityNotifier()
		if cerr != nil {
			return nil, status.CreateFailed(KindAccessibilityNotifier.String(), cerr)
		}
		return notifier, nil
	})
	if occupied {
		return status.AlreadyRegistered(KindAccessibilityNotifier.String())
	}
	if err != nil {
		l.log.Warn("service construction failed",
			zap.String("kind", KindAccessibilityNotifier.String()),
			zap.Error(err))
	}
	return err
}

// LocateConsoleControl returns the console control, constructing it on first
// use.
func (l *Locator) LocateConsoleControl() (ConsoleControl, error) {
	return locate(l, &l.consoleControl, KindConsoleControl, func(f Factory) (ConsoleControl, error) {
		return f.CreateConsoleControl()
	})
}

// LocateWindowMetrics returns the window metrics provider, constructing it
// on first use.
func (l *Locator) LocateWindowMetrics() (WindowMetrics, error) {
	return locate(l, &l.windowMetrics, KindWindowMetrics, func(f Factory) (WindowMetrics, error) {
		return f.CreateWindowMetrics()
	})
}

// LocateHighDpiApi returns the high-DPI API, constructing it on first use.
func (l *Locator) LocateHighDpiApi() (HighDpiApi, error) {
	return locate(l, &l.highDpiApi, KindHighDpiApi, func(f Factory) (HighDpiApi, error) {
		return f.CreateHighDpiApi()
	})
}

// LocateSystemConfigurationProvider returns the system configuration
// provider, constructing it on first use.
func (l *Locator) LocateSystemConfigurationProvider() (SystemConfigurationProvider, error) {
	return locate(l, &l.systemConfig, KindSystemConfigurationProvider, func(f Factory) (SystemConfigurationProvider, error) {
		return f.CreateSystemConfigurationProvider()
	})
}

// LocateConsoleWindow returns the console window if one has been registered.
// Pure lookup; never constructs.
func (l *Locator) LocateConsoleWindow() ConsoleWindow {
	v, _ := l.consoleWindow.get()
	return v
}

// LocateConsoleInputThread returns the input thread if one has been created.
// Pure lookup; never constructs.
func (l *Locator) LocateConsoleInputThread() ConsoleInputThread {
	v, _ := l.consoleInputThread.get()
	return v
}

// LocateAccessibilityNotifier returns the accessibility notifier if one has
// been created. Pure lookup; never constructs.
func (l *Locator) LocateAccessibilityNotifier() AccessibilityNotifier {
	v, _ := l.accessibilityNotifier.get()
	return v
}

// ReleaseConsoleWindow empties the console-window slot, closing the instance
// if it supports closing. Reserved for strict rundown; no other slot is ever
// cleared.
func (l *Locator) ReleaseConsoleWindow() {
	w, ok := l.consoleWindow.clear()
	if !ok {
		return
	}
	if closer, ok := w.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			l.log.Warn("console window close failed", zap.Error(err))
		}
	}
}
