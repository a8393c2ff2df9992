// File: doc.go
// Title: minilang Parser Package Documentation
// Description: Implements the lexical analyzer and parser for minilang
//              source text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for minilang.

The Lexer scans its input left to right in one pass and produces a token
slice that always ends in exactly one EOF token. Only the space character
counts as whitespace; digits, ASCII letters and the operators + - * / are
the rest of the alphabet. Anything else yields a *LexError carrying the
character and its byte offset, and no tokens.

The Parser consumes a token slice with one forward cursor and builds a
single ast.Expression. A term is a Number or an Identifier; every other
token kind in term position yields a *ParseError carrying the token and its
index. Operator tokens are lexed but never accepted by the grammar, so
input such as "2 + 3" fails at the "+".

Both error types match the ErrLex and ErrParse sentinels with errors.Is:

	expr, err := parser.ParseString("x 42")
	if errors.Is(err, parser.ErrParse) {
		// ...
	}
*/
package parser
