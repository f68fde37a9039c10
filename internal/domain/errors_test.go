package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "test.op",
		Kind: KindInvalidConfig,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
}

func TestOpErrorMessageIncludesPath(t *testing.T) {
	err := &OpError{
		Op:   "yamlconfig.load",
		Kind: KindNotFound,
		Path: "/ws/ros-config.yml",
		Err:  ErrNotFound,
	}

	msg := err.Error()
	if msg == "" {
		t.Fatalf("expected non-empty message")
	}
	for _, want := range []string{"yamlconfig.load", "not_found", "/ws/ros-config.yml"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q, got %q", want, msg)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{
		Op:   "test.op",
		Kind: KindExecution,
		Err:  ErrExecution,
	}

	if !IsKind(err, KindExecution) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind mismatch for a different kind")
	}
	if IsKind(errors.New("plain"), KindExecution) {
		t.Fatalf("expected IsKind=false for a non-OpError")
	}
}
