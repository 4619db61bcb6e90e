package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestTaggedErrors(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
		msg      string
	}{
		{NotFoundError("User not found"), ErrNotFound, "User not found"},
		{ValidationError("Missing required field: email"), ErrValidation, "Missing required field: email"},
		{ConflictError("Order already exists"), ErrConflict, "Order already exists"},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.sentinel) {
			t.Fatalf("%v does not match its sentinel", tc.err)
		}
		if got := Message(tc.err); got != tc.msg {
			t.Fatalf("expected message %q, got %q", tc.msg, got)
		}
	}
}

func TestDependencyError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Dependency("product-service", cause)

	if !errors.Is(err, ErrDependency) {
		t.Fatalf("expected ErrDependency match")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to remain reachable")
	}
	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected DependencyError")
	}
	if depErr.Target != "product-service" {
		t.Fatalf("unexpected target %q", depErr.Target)
	}
}

func TestTaggedErrorsAreDistinct(t *testing.T) {
	if errors.Is(NotFoundError("x"), ErrValidation) {
		t.Fatalf("not-found must not match validation")
	}
	if errors.Is(ConflictError("x"), ErrNotFound) {
		t.Fatalf("conflict must not match not-found")
	}
}
