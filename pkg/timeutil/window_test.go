package timeutil

import (
	"testing"
)

func TestParseWindowDefault(t *testing.T) {
	days, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 7 {
		t.Fatalf("expected 7 days, got %d", days)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	days, label, err := ParseWindow("1w 9days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 16 {
		t.Fatalf("expected 16 days, got %d", days)
	}
	if label != "2w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d", "2w!"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for window %q", in)
		}
	}
}
