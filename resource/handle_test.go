package resource

import (
	"errors"
	"testing"
)

// Compile-time capability checks for the bundled reference types.
var (
	_ ContextBuilder = (*Handle)(nil)
	_ ContextBuilder = (*Untyped)(nil)
)

func TestHandleResolve(t *testing.T) {
	ctx := NewContext()
	ctx.Set("player.sprite", "hero.png")

	var h Handle
	if err := h.ConstructFromContext(ctx); err != nil {
		t.Fatalf("ConstructFromContext failed: %v", err)
	}

	h.Bind("player.sprite")

	if h.Key() != "player.sprite" {
		t.Errorf("Key = %q, want player.sprite", h.Key())
	}

	v, err := h.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if v != "hero.png" {
		t.Errorf("Resolve = %v, want hero.png", v)
	}
}

func TestHandleUnbound(t *testing.T) {
	var h Handle
	if err := h.ConstructFromContext(NewContext()); err != nil {
		t.Fatalf("ConstructFromContext failed: %v", err)
	}

	if _, err := h.Resolve(); !errors.Is(err, ErrUnbound) {
		t.Errorf("expected ErrUnbound, got %v", err)
	}
}

func TestHandleMissingKey(t *testing.T) {
	var h Handle
	if err := h.ConstructFromContext(NewContext()); err != nil {
		t.Fatalf("ConstructFromContext failed: %v", err)
	}

	h.Bind("missing")

	if _, err := h.Resolve(); err == nil {
		t.Error("expected error resolving a missing key")
	}
}

func TestHandleNotConstructed(t *testing.T) {
	var h Handle
	h.Bind("k")

	if _, err := h.Resolve(); err == nil {
		t.Error("expected error resolving before construction")
	}
}

func TestUntypedCapturesContext(t *testing.T) {
	ctx := NewContext()

	var u Untyped
	if u.Context() != nil {
		t.Error("Context should be nil before construction")
	}

	if err := u.ConstructFromContext(ctx); err != nil {
		t.Fatalf("ConstructFromContext failed: %v", err)
	}

	if u.Context() != ctx {
		t.Error("Context should return the captured context")
	}
}
