// File: minilang.go
// Title: minilang Engine
// Description: Ties the lexer, parser and runner together. Every run gets
//              a run ID, is timed stage by stage and either produces the
//              complete output or none of it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package minilang

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	mlerror "github.com/msto63/minilang/foundation/core/error"
	mllog "github.com/msto63/minilang/foundation/core/log"
	mlast "github.com/msto63/minilang/foundation/minilang/ast"
	mlparser "github.com/msto63/minilang/foundation/minilang/parser"
	mlrunner "github.com/msto63/minilang/foundation/minilang/runner"
	"github.com/msto63/minilang/foundation/minilang/token"
	"github.com/msto63/minilang/foundation/utils/stringx"
)

// Stage names used for timer checkpoints and the report
const (
	StageTokenize = "tokenize"
	StageParse    = "parse"
	StageRun      = "run"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 4096

// Engine runs minilang source through the whole pipeline. It holds no
// per-run state and can be used concurrently.
type Engine struct {
	parser  *mlparser.Parser
	logger  *mllog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger *mllog.Logger

	// MaxInputLength limits the source length in bytes. Negative disables
	// the limit.
	MaxInputLength int

	// Output receives the runner lines of successful runs. Nil keeps the
	// lines in the report only.
	Output io.Writer
}

// Report describes a successful run
type Report struct {
	RunID    string                   `json:"run_id" yaml:"run_id"`
	Source   string                   `json:"source" yaml:"source"`
	Lines    []string                 `json:"lines" yaml:"lines"`
	Tokens   int                      `json:"tokens" yaml:"tokens"`
	Leaves   int                      `json:"leaves" yaml:"leaves"`
	Duration time.Duration            `json:"duration" yaml:"duration"`
	Stages   map[string]time.Duration `json:"stages" yaml:"stages"`
}

// New creates a new engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mllog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	logger := opts.Logger.WithField("component", "minilang-engine")

	return &Engine{
		parser:  mlparser.New(mlparser.Options{Logger: opts.Logger}),
		logger:  logger,
		options: opts,
	}
}

// Tokenize checks the input length and tokenizes source
func (e *Engine) Tokenize(source string) ([]token.Token, error) {
	if err := e.checkLength(source); err != nil {
		return nil, err
	}

	tokens, err := mlparser.Tokenize(source)
	if err != nil {
		return nil, wrapLexError(err)
	}
	return tokens, nil
}

// Parse tokenizes and parses source
func (e *Engine) Parse(source string) (*mlast.Expression, error) {
	tokens, err := e.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return e.parseTokens(tokens)
}

// Run tokenizes, parses and runs source. On failure nothing is written to
// the output. The context is checked before every stage.
func (e *Engine) Run(ctx context.Context, source string) (*Report, error) {
	runID := uuid.New().String()
	logger := e.logger.WithRunID(runID)

	logger.Debug("Starting run", mllog.Fields{
		"source": stringx.Truncate(source, 64, "..."),
		"length": len(source),
	})

	timer := logger.StartTimer("minilang run")
	report, err := e.run(ctx, source, timer)
	if err != nil {
		var mlErr *mlerror.Error
		if errors.As(err, &mlErr) {
			mlErr.WithRequestID(runID)
		}
		timer.StopWithError(err)
		return nil, err
	}

	report.RunID = runID
	report.Stages = timer.Checkpoints()
	report.Duration = timer.Stop()
	return report, nil
}

func (e *Engine) run(ctx context.Context, source string, timer *mllog.Timer) (*Report, error) {
	if err := checkContext(ctx, StageTokenize); err != nil {
		return nil, err
	}
	tokens, err := e.Tokenize(source)
	if err != nil {
		return nil, err
	}
	timer.Checkpoint(StageTokenize)

	if err := checkContext(ctx, StageParse); err != nil {
		return nil, err
	}
	expr, err := e.parseTokens(tokens)
	if err != nil {
		return nil, err
	}
	timer.Checkpoint(StageParse)

	if err := checkContext(ctx, StageRun); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	runner := mlrunner.New(mlrunner.Options{Output: &buf, Logger: e.logger})
	if err := runner.Run(expr); err != nil {
		return nil, err
	}

	if e.options.Output != nil {
		if _, err := e.options.Output.Write(buf.Bytes()); err != nil {
			return nil, mlerror.Wrap(err, "failed to write run output").
				WithCode(mlerror.CodeOutput).
				WithOperation(StageRun)
		}
	}
	timer.Checkpoint(StageRun)

	lines := stringx.SplitLines(buf.String())
	if lines == nil {
		lines = []string{}
	}

	return &Report{
		Source: source,
		Lines:  lines,
		Tokens: len(tokens),
		Leaves: expr.Len(),
	}, nil
}

func (e *Engine) parseTokens(tokens []token.Token) (*mlast.Expression, error) {
	expr, err := e.parser.Parse(tokens)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return expr, nil
}

func (e *Engine) checkLength(source string) error {
	limit := e.options.MaxInputLength
	if limit > 0 && len(source) > limit {
		return mlerror.Newf("input is %d bytes, limit is %d", len(source), limit).
			WithCode(mlerror.CodeInputTooLong).
			WithOperation(StageTokenize).
			WithDetail("length", len(source)).
			WithDetail("limit", limit)
	}
	return nil
}

func checkContext(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return mlerror.Wrap(err, "run canceled").
			WithCode(mlerror.CodeCanceled).
			WithOperation(stage)
	}
	return nil
}

func wrapLexError(err error) error {
	wrapped := mlerror.Wrap(err, "tokenization failed").
		WithCode(mlerror.CodeLexical).
		WithOperation(StageTokenize)

	var lexErr *mlparser.LexError
	if errors.As(err, &lexErr) {
		wrapped.WithDetail("char", string(lexErr.Char)).
			WithDetail("offset", lexErr.Offset)
	}
	return wrapped
}

func wrapParseError(err error) error {
	wrapped := mlerror.Wrap(err, "parsing failed").
		WithCode(mlerror.CodeSyntax).
		WithOperation(StageParse)

	var parseErr *mlparser.ParseError
	if errors.As(err, &parseErr) {
		wrapped.WithDetail("token", parseErr.Token.String()).
			WithDetail("index", parseErr.Index)
	}
	return wrapped
}
