// File: doc.go
// Title: Core Logging Package Documentation
// Description: Structured logging for the minilang engine and CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial package documentation
// - 2026-10-19 v0.2.0: Rewritten for minilang

/*
Package log provides leveled, structured logging.

Loggers are immutable from the caller's point of view: every With* method
returns a derived logger, so a component can tag its own entries without
affecting anybody else:

	logger := mllog.GetDefault().WithField("component", "minilang-parser")
	logger.Debug("Parsing token stream", mllog.Fields{"tokens": len(tokens)})

Four output formats are available (json, text, console, logfmt). The CLI
writes logs to stderr so that stdout only carries pipeline output.

A Timer measures a whole operation and optional named checkpoints:

	timer := logger.StartTimer("pipeline")
	tokens, err := parser.Tokenize(src)
	timer.Checkpoint("tokenize")
	...
	timer.Stop()
*/
package log
