// File: minilang_test.go
// Title: minilang Engine Tests
// Description: End-to-end tests for the engine: successful runs, lexical
//              and syntax failures, input limits and cancellation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine test suite

package minilang

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	mlerror "github.com/msto63/minilang/foundation/core/error"
	mllog "github.com/msto63/minilang/foundation/core/log"
	mlparser "github.com/msto63/minilang/foundation/minilang/parser"
)

func newTestEngine(out *bytes.Buffer) *Engine {
	return New(Options{Logger: mllog.Discard(), Output: out})
}

func TestEngine_Run(t *testing.T) {
	tests := []struct {
		name   string
		source string
		lines  []string
		tokens int
	}{
		{"Single factor", "42", []string{"Factor: 42"}, 2},
		{"Single identifier", "x", []string{"Identifier: x"}, 2},
		{"Mixed", "x 042 y", []string{"Identifier: x", "Factor: 42", "Identifier: y"}, 4},
		{"Empty", "", []string{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			report, err := newTestEngine(&out).Run(context.Background(), tt.source)
			if err != nil {
				t.Fatalf("Run(%q) error = %v", tt.source, err)
			}

			if !reflect.DeepEqual(report.Lines, tt.lines) {
				t.Errorf("Lines = %q, want %q", report.Lines, tt.lines)
			}
			if report.Tokens != tt.tokens {
				t.Errorf("Tokens = %d, want %d", report.Tokens, tt.tokens)
			}
			if report.Leaves != len(tt.lines) {
				t.Errorf("Leaves = %d, want %d", report.Leaves, len(tt.lines))
			}

			wantOut := ""
			if len(tt.lines) > 0 {
				wantOut = strings.Join(tt.lines, "\n") + "\n"
			}
			if out.String() != wantOut {
				t.Errorf("output = %q, want %q", out.String(), wantOut)
			}

			if _, err := uuid.Parse(report.RunID); err != nil {
				t.Errorf("RunID %q is not a UUID: %v", report.RunID, err)
			}
			for _, stage := range []string{StageTokenize, StageParse, StageRun} {
				if _, ok := report.Stages[stage]; !ok {
					t.Errorf("missing stage %s in report", stage)
				}
			}
		})
	}
}

func TestEngine_RunSampleInputFails(t *testing.T) {
	var out bytes.Buffer
	report, err := newTestEngine(&out).Run(context.Background(), "2 + 3 * 4")
	if err == nil {
		t.Fatalf("Run() = %+v, expected syntax error", report)
	}

	if !errors.Is(err, mlparser.ErrParse) {
		t.Errorf("error %v does not match ErrParse", err)
	}
	if !mlerror.HasCode(err, mlerror.CodeSyntax) {
		t.Errorf("code = %s, want %s", mlerror.GetCode(err), mlerror.CodeSyntax)
	}
	if out.Len() != 0 {
		t.Errorf("failed run wrote output %q", out.String())
	}

	var mlErr *mlerror.Error
	if !errors.As(err, &mlErr) {
		t.Fatalf("error %T is not *mlerror.Error", err)
	}
	if mlErr.Details()["index"] != 1 || mlErr.Details()["token"] != "OPERATOR(+)" {
		t.Errorf("details = %v", mlErr.Details())
	}
	if _, err := uuid.Parse(mlErr.RequestID()); err != nil {
		t.Errorf("error carries no run ID: %q", mlErr.RequestID())
	}
}

func TestEngine_RunLexError(t *testing.T) {
	var out bytes.Buffer
	_, err := newTestEngine(&out).Run(context.Background(), "2@3")
	if !errors.Is(err, mlparser.ErrLex) {
		t.Fatalf("error = %v, want lexical error", err)
	}
	if !mlerror.HasCode(err, mlerror.CodeLexical) {
		t.Errorf("code = %s, want %s", mlerror.GetCode(err), mlerror.CodeLexical)
	}

	var lexErr *mlparser.LexError
	if !errors.As(err, &lexErr) || lexErr.Char != '@' || lexErr.Offset != 1 {
		t.Errorf("LexError = %+v, want '@' at 1", lexErr)
	}
	if mlerror.GetCode(err).ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", mlerror.GetCode(err).ExitCode())
	}
}

func TestEngine_MaxInputLength(t *testing.T) {
	engine := New(Options{Logger: mllog.Discard(), MaxInputLength: 5})

	if _, err := engine.Run(context.Background(), "a b c"); err != nil {
		t.Errorf("input at the limit failed: %v", err)
	}

	_, err := engine.Run(context.Background(), "a b c d")
	if !mlerror.HasCode(err, mlerror.CodeInputTooLong) {
		t.Errorf("error = %v, want %s", err, mlerror.CodeInputTooLong)
	}

	unlimited := New(Options{Logger: mllog.Discard(), MaxInputLength: -1})
	long := strings.Repeat("x ", DefaultMaxInputLength)
	if _, err := unlimited.Run(context.Background(), long); err != nil {
		t.Errorf("unlimited engine failed: %v", err)
	}
}

func TestEngine_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := newTestEngine(&out).Run(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if !mlerror.HasCode(err, mlerror.CodeCanceled) {
		t.Errorf("code = %s, want %s", mlerror.GetCode(err), mlerror.CodeCanceled)
	}
	if out.Len() != 0 {
		t.Errorf("canceled run wrote output %q", out.String())
	}
}

func TestEngine_ParseAndTokenize(t *testing.T) {
	engine := New(Options{Logger: mllog.Discard()})

	tokens, err := engine.Tokenize("if x")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(tokens) != 3 {
		t.Errorf("got %d tokens, want 3", len(tokens))
	}

	if _, err := engine.Parse("if x"); !errors.Is(err, mlparser.ErrParse) {
		t.Errorf("Parse(\"if x\") error = %v, want parse error", err)
	}

	expr, err := engine.Parse("a b")
	if err != nil || expr.Len() != 2 {
		t.Errorf("Parse(\"a b\") = %v, %v", expr, err)
	}
}

func TestEngine_Logging(t *testing.T) {
	var logs bytes.Buffer
	logger := mllog.NewWithConfig(mllog.Config{
		Level:  mllog.LevelDebug,
		Format: mllog.FormatText,
		Output: &logs,
	})

	report, err := New(Options{Logger: logger}).Run(context.Background(), "x")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := logs.String()
	if !strings.Contains(out, "run="+report.RunID) {
		t.Errorf("logs do not carry the run ID: %q", out)
	}
	if !strings.Contains(out, "minilang run completed") {
		t.Errorf("logs missing completion entry: %q", out)
	}
}
