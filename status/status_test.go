package status

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeCategories(t *testing.T) {
	tests := []struct {
		code     Code
		category Category
		retry    bool
	}{
		{CodeAlreadyRegistered, CategoryPermanent, false},
		{CodeInvalidInstance, CategoryPermanent, false},
		{CodeNotRegistered, CategoryPermanent, false},
		{CodeCreateFailed, CategoryTransient, true},
		{CodeFactoryUnavailable, CategoryTransient, true},
		{CodeHookAlreadySet, CategoryInternal, false},
		{CodeInternal, CategoryInternal, false},
	}

	for _, tt := range tests {
		if got := tt.code.DefaultCategory(); got != tt.category {
			t.Errorf("%s category = %s, want %s", tt.code, got, tt.category)
		}
		if got := tt.code.DefaultCategory().IsRetryable(); got != tt.retry {
			t.Errorf("%s retryable = %v, want %v", tt.code, got, tt.retry)
		}
	}
}

func TestConstructors(t *testing.T) {
	st := AlreadyRegistered("console window")
	if st.Code() != CodeAlreadyRegistered {
		t.Errorf("Code = %s, want ALREADY_REGISTERED", st.Code())
	}
	if st.Kind() != "console window" {
		t.Errorf("Kind = %q", st.Kind())
	}
	if st.Retryable() {
		t.Error("double registration must not be retryable")
	}

	cause := errors.New("RegisterClassEx failed")
	cf := CreateFailed("pseudo-window", cause)
	if cf.Code() != CodeCreateFailed {
		t.Errorf("Code = %s, want CREATE_FAILED", cf.Code())
	}
	if !cf.Retryable() {
		t.Error("construction failure should be retryable")
	}
	if !errors.Is(cf, cause) {
		t.Error("cause should be in the error chain")
	}
}

func TestIsAndCodeOf(t *testing.T) {
	st := InvalidInstance("console control")

	if !Is(st, CodeInvalidInstance) {
		t.Error("Is should match the status code")
	}
	if Is(st, CodeAlreadyRegistered) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), CodeInvalidInstance) {
		t.Error("Is should not match a plain error")
	}

	if got := CodeOf(st); got != CodeInvalidInstance {
		t.Errorf("CodeOf = %s, want INVALID_INSTANCE", got)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestIsMatchesWrappedChain(t *testing.T) {
	inner := FactoryUnavailable(errors.New("no backend"))
	outer := fmt.Errorf("locating high dpi api: %w", inner)

	if !Is(outer, CodeFactoryUnavailable) {
		t.Error("Is should see through fmt.Errorf wrapping")
	}
	if !IsRetryable(outer) {
		t.Error("wrapped transient status should stay retryable")
	}
}

func TestWrapPreservesCode(t *testing.T) {
	st := CreateFailed("input thread", errors.New("thread creation refused"))
	wrapped := Wrap(st, "starting interactivity")

	if wrapped.Code() != CodeCreateFailed {
		t.Errorf("wrapped code = %s, want CREATE_FAILED", wrapped.Code())
	}
	if wrapped.Kind() != "input thread" {
		t.Errorf("wrapped kind = %q", wrapped.Kind())
	}
	if !wrapped.Retryable() {
		t.Error("wrapping must not change retryability")
	}
}

func TestWrapPlainAndNil(t *testing.T) {
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	wrapped := Wrap(errors.New("plain"), "context")
	if wrapped.Code() != CodeInternal {
		t.Errorf("plain errors wrap to %s, want INTERNAL", wrapped.Code())
	}
}

func TestFromCode(t *testing.T) {
	st := FromCode(CodeHookAlreadySet)
	if st.Error() != CodeHookAlreadySet.Description() {
		t.Errorf("message = %q, want default description", st.Error())
	}
	if st.Category() != CategoryInternal {
		t.Errorf("category = %s, want internal", st.Category())
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	st := New(CodeCreateFailed, "creating console control", WithCause(errors.New("access denied")))
	want := "creating console control: access denied"
	if st.Error() != want {
		t.Errorf("Error() = %q, want %q", st.Error(), want)
	}
}
