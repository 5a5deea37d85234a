package logger

import "testing"

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error"} {
		l, err := ParseLevel(s)
		if err != nil || string(l) != s {
			t.Errorf("ParseLevel(%q) = %q, %v", s, l, err)
		}
	}
	if l, err := ParseLevel("loud"); err == nil || l != InfoLevel {
		t.Errorf("ParseLevel(\"loud\") = %q, %v, want info and an error", l, err)
	}
}

func TestNew(t *testing.T) {
	for _, dev := range []bool{true, false} {
		log, err := New(dev, WarnLevel)
		if err != nil {
			t.Fatalf("New(%v) unexpected error: %v", dev, err)
		}
		if log.Core().Enabled(InfoLevel.zapLevel()) {
			t.Errorf("New(%v, warn) logs at info level", dev)
		}
		if !log.Core().Enabled(ErrorLevel.zapLevel()) {
			t.Errorf("New(%v, warn) does not log errors", dev)
		}
	}
}
