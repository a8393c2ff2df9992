// File: format_test.go
// Title: Formatter and Level Tests
// Description: Tests for the log formatters and for level/format parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Sorted fields, run ID

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	entry := NewEntry(LevelWarn, "Tokenization failed")
	entry.Timestamp = time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)
	entry.Logger = "minilang"
	entry.RunID = "abc"
	entry.Fields["offset"] = 1
	entry.Fields["char"] = "@"
	entry.Error = errors.New("unexpected character")
	return entry
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `12:30:00 [WRN] {minilang} (run=abc) Tokenization failed [char=@ offset=1] error="unexpected character"` + "\n"
	if string(out) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", out, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(out), LevelWarn.Color()) {
		t.Error("console output should start with the level color")
	}
	if !strings.HasSuffix(string(out), "\033[0m\n") {
		t.Error("console output should reset colors at the end of the line")
	}

	f.DisableColors = true
	out, _ = f.Format(testEntry())
	if strings.Contains(string(out), "\033[") {
		t.Error("DisableColors should suppress ANSI codes")
	}
}

func TestLogfmtFormatter(t *testing.T) {
	f := NewLogfmtFormatter()

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2026-10-19T12:30:00Z level=warn message="Tokenization failed" logger=minilang run_id=abc char="@" offset=1 error="unexpected character"` + "\n"
	if string(out) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", out, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter()

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	s := string(out)
	for _, want := range []string{`"level":"warn"`, `"run_id":"abc"`, `"offset":1`, `"error":"unexpected character"`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON output missing %s: %s", want, s)
		}
	}
	if !strings.HasSuffix(s, "\n") {
		t.Error("JSON output should end with a newline")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
