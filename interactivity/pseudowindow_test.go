package interactivity

import (
	"errors"
	"testing"
)

func TestLocatePseudoWindowOwnerHonoredOnlyOnce(t *testing.T) {
	loc, f, _ := newTestLocator()

	first := loc.LocatePseudoWindow(WindowHandle(0x42))
	if first == NoWindow {
		t.Fatal("expected a window handle")
	}

	// The second call's owner argument is ignored; the stored handle is
	// returned without another construction.
	second := loc.LocatePseudoWindow(WindowHandle(0x99))
	if second != first {
		t.Errorf("second handle %#x differs from first %#x", second, first)
	}
	if f.pseudoCalls != 1 {
		t.Errorf("pseudoCalls = %d, want 1", f.pseudoCalls)
	}
	if f.pseudoOwner != WindowHandle(0x42) {
		t.Errorf("owner = %#x, want the first call's owner", f.pseudoOwner)
	}
}

func TestPseudoWindowFailureIsPermanent(t *testing.T) {
	loc, f, _ := newTestLocator()
	f.pseudoErr = errors.New("window class registration failed")

	if got := loc.LocatePseudoWindow(Desktop); got != NoWindow {
		t.Fatalf("expected NoWindow on failure, got %#x", got)
	}

	// Initialization is never retried, even after the platform recovers.
	f.mu.Lock()
	f.pseudoErr = nil
	f.mu.Unlock()

	if got := loc.LocatePseudoWindow(Desktop); got != NoWindow {
		t.Errorf("expected failure to be permanent, got %#x", got)
	}
	if f.pseudoCalls != 1 {
		t.Errorf("pseudoCalls = %d, want 1", f.pseudoCalls)
	}
}

func TestPseudoWindowFactoryLoadFailureIsPermanent(t *testing.T) {
	f := &fakeFactory{}
	fail := true
	loc := New(func() (Factory, error) {
		if fail {
			return nil, errors.New("no platform backend")
		}
		return f, nil
	})

	if got := loc.LocatePseudoWindow(Desktop); got != NoWindow {
		t.Fatalf("expected NoWindow, got %#x", got)
	}

	// Even though the loader would now succeed, pseudo window init is done.
	fail = false
	if got := loc.LocatePseudoWindow(Desktop); got != NoWindow {
		t.Errorf("expected permanent NoWindow, got %#x", got)
	}
	if f.pseudoCalls != 0 {
		t.Errorf("pseudoCalls = %d, want 0", f.pseudoCalls)
	}

	// The service slots are unaffected: the factory can still load for them.
	if _, err := loc.LocateWindowMetrics(); err != nil {
		t.Errorf("service slot should still be able to load the factory: %v", err)
	}
}

func TestSetPseudoWindowCallback(t *testing.T) {
	loc, f, _ := newTestLocator()

	var shown []bool
	loc.SetPseudoWindowCallback(func(visible bool) {
		shown = append(shown, visible)
	})

	// Registering the callback forces the window setup first.
	if f.pseudoCalls != 1 {
		t.Errorf("pseudoCalls = %d, want 1 (setup forced by callback registration)", f.pseudoCalls)
	}
	if f.callback == nil {
		t.Fatal("callback was not forwarded to the factory")
	}

	f.callback(true)
	f.callback(false)
	if len(shown) != 2 || !shown[0] || shown[1] {
		t.Errorf("callback deliveries = %v, want [true false]", shown)
	}
}

func TestSetPseudoWindowCallbackWithoutFactory(t *testing.T) {
	loc := New(func() (Factory, error) {
		return nil, errors.New("no backend")
	})

	// Must not panic when the factory never materialized.
	loc.SetPseudoWindowCallback(func(bool) {})
}
