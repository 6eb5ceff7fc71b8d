package faults_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"docreorg/internal/faults"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("permission denied")
	err := faults.Wrap(faults.ErrIO, "reorganizer", "move", "failed to relocate intro.md", base)
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"reorganizer", "move", "intro.md", "permission denied"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := faults.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected ErrIO default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "unspecified failure") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, faults.ExitOK},
		{"io", faults.Wrap(faults.ErrIO, "reorganizer", "write", "", errors.New("disk full")), faults.ExitFailure},
		{"validation", faults.Wrap(faults.ErrValidation, "layout", "validate", "duplicate group", nil), faults.ExitInvalid},
		{"configuration", fmt.Errorf("load: %w", faults.ErrConfiguration), faults.ExitInvalid},
		{"locked", faults.Wrap(faults.ErrLocked, "runlock", "acquire", "", nil), faults.ExitLocked},
		{"other", context.Canceled, faults.ExitFailure},
	}
	for _, tc := range cases {
		if got := faults.ExitCode(tc.err); got != tc.want {
			t.Errorf("%s: ExitCode = %d, want %d", tc.name, got, tc.want)
		}
	}
}
