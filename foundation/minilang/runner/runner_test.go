// File: runner_test.go
// Title: minilang Runner Unit Tests
// Description: Tests leaf output, ordering, empty trees and write errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial runner test suite

package runner

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	mlerror "github.com/msto63/minilang/foundation/core/error"
	mllog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang/parser"
)

// failingWriter fails every write after the first n
type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func newTestRunner(buf *bytes.Buffer) *Runner {
	return New(Options{Output: buf, Logger: mllog.Discard()})
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Single factor", "42", "Factor: 42\n"},
		{"Single identifier", "x", "Identifier: x\n"},
		{"Leading zeros", "007", "Factor: 7\n"},
		{"Mixed terms", "x 1 yy 22", "Identifier: x\nFactor: 1\nIdentifier: yy\nFactor: 22\n"},
		{"Empty input", "", ""},
		{"Only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q) error = %v", tt.input, err)
			}

			var buf bytes.Buffer
			if err := newTestRunner(&buf).Run(expr); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	expr, err := parser.ParseString("a 2 b")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	want := []string{"Identifier: a", "Factor: 2", "Identifier: b"}
	if got := Lines(expr); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestRunner_WriteError(t *testing.T) {
	expr, err := parser.ParseString("1 2 3")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	r := New(Options{Output: &failingWriter{n: 1}, Logger: mllog.Discard()})
	err = r.Run(expr)
	if err == nil {
		t.Fatal("expected write error")
	}
	if !mlerror.HasCode(err, mlerror.CodeOutput) {
		t.Errorf("error code = %s, want %s", mlerror.GetCode(err), mlerror.CodeOutput)
	}

	var mlErr *mlerror.Error
	if errors.As(err, &mlErr) && mlErr.Details()["lines_written"] != 1 {
		t.Errorf("lines_written = %v, want 1", mlErr.Details()["lines_written"])
	}
}
