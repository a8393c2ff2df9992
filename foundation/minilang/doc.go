// File: doc.go
// Title: minilang Package Documentation
// Description: Package overview for the minilang engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package minilang is the front end for a tiny language of numbers and
identifiers.

The pipeline has three stages, each in its own package:

  - parser.Lexer turns text into tokens (package token)
  - parser.Parser turns tokens into a two-level tree (package ast)
  - runner.Runner walks the tree and writes one line per leaf

The Engine runs all three with logging, timing and structured errors:

	engine := minilang.New(minilang.Options{Output: os.Stdout})
	report, err := engine.Run(ctx, "x 42")
	// Identifier: x
	// Factor: 42

Runs are all or nothing. Lexical errors carry the LEXICAL_ERROR code and
syntax errors SYNTAX_ERROR; both still match parser.ErrLex and
parser.ErrParse with errors.Is. Operators are lexed but the grammar has no
rule for them, so the sample input "2 + 3 * 4" fails at "+".
*/
package minilang
