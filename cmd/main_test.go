package main

import (
	"log/slog"
	"testing"

	"github.com/pterm/pterm"
)

func TestParseGuess(t *testing.T) {
	tests := []struct {
		in       string
		expected int
		ok       bool
	}{
		{"1", 1, true},
		{"0", 0, true},
		{"-1", -1, true},
		{" -1\n", -1, true},
		{"2", 0, false},
		{"hand 1", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := parseGuess(tt.in)
		if tt.ok && err != nil {
			t.Fatalf("%q: unexpected error %v", tt.in, err)
		}
		if !tt.ok && err == nil {
			t.Fatalf("%q: expected error", tt.in)
		}
		if got != tt.expected {
			t.Fatalf("%q: expected %d, got %d", tt.in, tt.expected, got)
		}
	}
}

func TestFinalScore(t *testing.T) {
	if s := finalScore(3); s != "Final score: 3" {
		t.Fatalf("unexpected %q", s)
	}
}

func TestPtermLevel(t *testing.T) {
	if ptermLevel(slog.LevelDebug) != pterm.LogLevelDebug {
		t.Fatal("debug")
	}
	if ptermLevel(slog.LevelInfo) != pterm.LogLevelInfo {
		t.Fatal("info")
	}
	if ptermLevel(slog.LevelWarn) != pterm.LogLevelWarn {
		t.Fatal("warn")
	}
	if ptermLevel(slog.LevelError) != pterm.LogLevelError {
		t.Fatal("error")
	}
}
