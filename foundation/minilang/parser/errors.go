// File: errors.go
// Title: minilang Lexer and Parser Errors
// Description: Defines the structured errors returned by the lexer and the
//              parser. Both are fatal for the current run; callers match
//              them with errors.As or the ErrLex / ErrParse sentinels.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error types

package parser

import (
	"errors"
	"fmt"

	"github.com/msto63/minilang/foundation/minilang/token"
)

var (
	// ErrLex matches every *LexError with errors.Is
	ErrLex = errors.New("lexical error")

	// ErrParse matches every *ParseError with errors.Is
	ErrParse = errors.New("parse error")
)

// LexError reports a character outside the input alphabet
type LexError struct {
	Char   rune // offending character
	Offset int  // byte offset of Char in the input
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Offset)
}

// Is makes errors.Is(err, ErrLex) true for every LexError
func (e *LexError) Is(target error) bool {
	return target == ErrLex
}

// ParseError reports a token that cannot start a term
type ParseError struct {
	Token token.Token // unexpected token
	Index int         // position of Token in the token sequence
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected token %s at index %d: expected %s or %s",
		e.Token, e.Index, token.Number, token.Identifier)
}

// Is makes errors.Is(err, ErrParse) true for every ParseError
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
