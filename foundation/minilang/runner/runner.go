// File: runner.go
// Title: minilang Tree Runner
// Description: Walks a syntax tree depth-first and writes one line per
//              leaf: "Factor: <number>" or "Identifier: <name>".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial runner implementation

package runner

import (
	"fmt"
	"io"
	"os"
	"strconv"

	mlerror "github.com/msto63/minilang/foundation/core/error"
	mllog "github.com/msto63/minilang/foundation/core/log"
	mlast "github.com/msto63/minilang/foundation/minilang/ast"
)

// Runner writes the leaves of a tree to its output
type Runner struct {
	output io.Writer
	logger *mllog.Logger
}

// Options configures runner behavior
type Options struct {
	Output io.Writer
	Logger *mllog.Logger
}

// New creates a new runner. Output defaults to stdout.
func New(opts Options) *Runner {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = mllog.GetDefault()
	}

	return &Runner{
		output: opts.Output,
		logger: opts.Logger.WithField("component", "minilang-runner"),
	}
}

// Run writes one line per leaf of root in traversal order
func (r *Runner) Run(root mlast.Node) error {
	v := &lineVisitor{output: r.output}
	if err := mlast.Walk(v, root); err != nil {
		return mlerror.Wrap(err, "failed to write runner output").
			WithCode(mlerror.CodeOutput).
			WithOperation("run").
			WithDetail("lines_written", v.written)
	}

	r.logger.Debug("Run completed", mllog.Fields{
		"lines": v.written,
	})
	return nil
}

// lineVisitor writes each leaf as it is visited
type lineVisitor struct {
	output  io.Writer
	written int
}

func (v *lineVisitor) VisitExpression(expr *mlast.Expression) error {
	return nil
}

func (v *lineVisitor) VisitFactor(factor *mlast.Factor) error {
	return v.writeLine(FormatFactor(factor))
}

func (v *lineVisitor) VisitIdentifier(ident *mlast.Identifier) error {
	return v.writeLine(FormatIdentifier(ident))
}

func (v *lineVisitor) writeLine(line string) error {
	if _, err := fmt.Fprintln(v.output, line); err != nil {
		return err
	}
	v.written++
	return nil
}

// FormatFactor returns the output line for a factor
func FormatFactor(factor *mlast.Factor) string {
	return "Factor: " + strconv.Itoa(factor.Value())
}

// FormatIdentifier returns the output line for an identifier
func FormatIdentifier(ident *mlast.Identifier) string {
	return "Identifier: " + ident.Name()
}

// Lines returns the output lines for root without writing them
func Lines(root mlast.Node) []string {
	leaves := mlast.CollectLeaves(root)
	lines := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		switch n := leaf.(type) {
		case *mlast.Factor:
			lines = append(lines, FormatFactor(n))
		case *mlast.Identifier:
			lines = append(lines, FormatIdentifier(n))
		}
	}
	return lines
}
