// File: doc.go
// Title: Core Error Package Documentation
// Description: Structured error handling for minilang.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial package documentation
// - 2026-10-19 v0.2.0: Rewritten for the minilang pipeline

/*
Package error provides the structured error type used by the minilang engine,
configuration loader and CLI.

Pipeline stages return their own typed errors (parser.LexError,
parser.ParseError). The engine wraps them into an *Error that adds a Code,
a Severity, the failing operation and the run ID:

	err := mlerror.Wrap(lexErr, "lexical analysis failed").
		WithCode(mlerror.CodeLexical).
		WithOperation("minilang.Run").
		WithRequestID(runID)

Because *Error implements Unwrap, callers can still reach the stage error:

	var lexErr *parser.LexError
	if errors.As(err, &lexErr) {
		fmt.Println(lexErr.Offset)
	}

The package is imported under an alias since its name shadows the builtin:

	import mlerror "github.com/msto63/minilang/foundation/core/error"
*/
package error
