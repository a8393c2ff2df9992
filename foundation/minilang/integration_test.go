// File: integration_test.go
// Title: minilang Pipeline Integration Tests
// Description: Exercises lexer, parser and runner together on generated
//              inputs, checks that an engine can be shared between
//              goroutines and benchmarks the pipeline.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial integration test suite

package minilang

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	mllog "github.com/msto63/minilang/foundation/core/log"
	mlast "github.com/msto63/minilang/foundation/minilang/ast"
	mlparser "github.com/msto63/minilang/foundation/minilang/parser"
	mlrunner "github.com/msto63/minilang/foundation/minilang/runner"
	"github.com/msto63/minilang/foundation/minilang/token"
)

// randomTerms builds a source of n terms separated by runs of spaces and
// the lines the runner is expected to print for it
func randomTerms(r *rand.Rand, n int) (string, []string) {
	var src strings.Builder
	var lines []string

	for i := 0; i < n; i++ {
		src.WriteString(strings.Repeat(" ", r.Intn(3)+1))
		if r.Intn(2) == 0 {
			v := r.Intn(100000)
			fmt.Fprintf(&src, "%d", v)
			lines = append(lines, fmt.Sprintf("Factor: %d", v))
			continue
		}

		name := randomName(r)
		src.WriteString(name)
		lines = append(lines, "Identifier: "+name)
	}
	return src.String(), lines
}

func randomName(r *rand.Rand) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for {
		b := make([]byte, r.Intn(6)+1)
		for i := range b {
			b[i] = letters[r.Intn(len(letters))]
		}
		if !token.IsKeyword(string(b)) {
			return string(b)
		}
	}
}

func TestPipeline_GeneratedInputs(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		source, want := randomTerms(r, r.Intn(8))

		tokens, err := mlparser.Tokenize(source)
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", source, err)
		}
		if len(tokens) != len(want)+1 || tokens[len(tokens)-1].Kind != token.EOF {
			t.Fatalf("Tokenize(%q) = %v", source, tokens)
		}

		expr, err := mlparser.Parse(tokens)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", source, err)
		}
		if len(mlast.CollectLeaves(expr)) != len(want) {
			t.Fatalf("Parse(%q) has %d leaves, want %d", source, expr.Len(), len(want))
		}

		var out bytes.Buffer
		runner := mlrunner.New(mlrunner.Options{Output: &out, Logger: mllog.Discard()})
		if err := runner.Run(expr); err != nil {
			t.Fatalf("Run(%q) error = %v", source, err)
		}

		wantOut := ""
		if len(want) > 0 {
			wantOut = strings.Join(want, "\n") + "\n"
		}
		if out.String() != wantOut {
			t.Fatalf("output for %q = %q, want %q", source, out.String(), wantOut)
		}
	}
}

func TestPipeline_OperatorAnywhereFails(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		source, want := randomTerms(r, r.Intn(5))
		op := "+-*/"[r.Intn(4)]
		source += " " + string(op)

		_, err := mlparser.ParseString(source)
		var parseErr *mlparser.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("ParseString(%q) error = %v, want ParseError", source, err)
		}
		if parseErr.Index != len(want) || parseErr.Token.Kind != token.Operator {
			t.Fatalf("ParseString(%q) failed at %v index %d", source, parseErr.Token, parseErr.Index)
		}
	}
}

func TestEngine_ConcurrentRuns(t *testing.T) {
	engine := New(Options{Logger: mllog.Discard()})

	var wg sync.WaitGroup
	errs := make(chan error, 16)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			source := fmt.Sprintf("x%s %d", strings.Repeat("y", n%3), n)
			report, err := engine.Run(context.Background(), source)
			if err != nil {
				errs <- err
				return
			}
			want := fmt.Sprintf("Factor: %d", n)
			if len(report.Lines) != 2 || report.Lines[1] != want {
				errs <- fmt.Errorf("run %d: lines = %q", n, report.Lines)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// BenchmarkEngineRun benchmarks a full run of a short program
func BenchmarkEngineRun(b *testing.B) {
	engine := New(Options{Logger: mllog.Discard()})
	source := "alpha 1 beta 22 gamma 333 delta 4444"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Run(context.Background(), source); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTokenize benchmarks the lexer on a long input
func BenchmarkTokenize(b *testing.B) {
	source := strings.Repeat("word 12345 ", 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mlparser.Tokenize(source); err != nil {
			b.Fatal(err)
		}
	}
}
