// File: lexer.go
// Title: minilang Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase. Converts an input
//              string into a token slice terminated by exactly one EOF
//              token in a single left-to-right pass without backtracking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package parser

import (
	"unicode/utf8"

	"github.com/msto63/minilang/foundation/minilang/token"
)

// Lexer holds the cursor state for tokenizing one input
type Lexer struct {
	input    string
	position int // offset of the next unread byte
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Position returns the byte offset of the cursor
func (l *Lexer) Position() int {
	return l.position
}

// NextToken scans the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	if l.position >= len(l.input) {
		return token.NewEOF(), nil
	}

	ch := l.input[l.position]
	switch {
	case isDigit(ch):
		return l.readNumber(), nil
	case isLetter(ch):
		return token.NewWord(l.readWord()), nil
	case token.IsOperatorChar(ch):
		l.position++
		return token.NewOperator(ch), nil
	default:
		r, _ := utf8.DecodeRuneInString(l.input[l.position:])
		return token.Token{}, &LexError{Char: r, Offset: l.position}
	}
}

// Tokenize scans the remaining input. On error no tokens are returned.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// skipWhitespace skips space characters; tabs and newlines are not whitespace
func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) && l.input[l.position] == ' ' {
		l.position++
	}
}

// readNumber consumes a maximal digit run. The value is accumulated in a
// native int; runs that exceed its range wrap around.
func (l *Lexer) readNumber() token.Token {
	start := l.position
	n := 0
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		n = n*10 + int(l.input[l.position]-'0')
		l.position++
	}
	return token.NewNumber(l.input[start:l.position], n)
}

// readWord consumes a maximal ASCII letter run
func (l *Lexer) readWord() string {
	start := l.position
	for l.position < len(l.input) && isLetter(l.input[l.position]) {
		l.position++
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize is a convenience function that tokenizes input in one call
func Tokenize(input string) ([]token.Token, error) {
	return NewLexer(input).Tokenize()
}
