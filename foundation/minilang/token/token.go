// File: token.go
// Title: minilang Token Definitions
// Description: Defines the token kinds produced by the lexer, the Token
//              value type and the fixed keyword table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token definitions

package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind is the closed set of token kinds
type Kind int

const (
	EOF        Kind = iota // end of input, always the last token
	Keyword                // if, then, else, while, do
	Identifier             // maximal letter run that is not a keyword
	Number                 // maximal digit run
	Operator               // + - * /
)

// String returns the upper-case name of the kind
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Keyword:
		return "KEYWORD"
	case Identifier:
		return "IDENTIFIER"
	case Number:
		return "NUMBER"
	case Operator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// EOFText is the sentinel value carried by the EOF token
const EOFText = "EOF"

// Token is an immutable lexical unit. Text holds the source text of the
// token (the sentinel EOFText for EOF); Int holds the parsed value of a
// Number token and is zero for every other kind.
type Token struct {
	Kind Kind
	Text string
	Int  int
}

// NewNumber creates a Number token for the digit run text with value n
func NewNumber(text string, n int) Token {
	return Token{Kind: Number, Text: text, Int: n}
}

// NewWord classifies a letter run as Keyword or Identifier
func NewWord(text string) Token {
	if IsKeyword(text) {
		return Token{Kind: Keyword, Text: text}
	}
	return Token{Kind: Identifier, Text: text}
}

// NewOperator creates an Operator token for one of + - * /
func NewOperator(op byte) Token {
	return Token{Kind: Operator, Text: string(op)}
}

// NewEOF creates the end-of-input token
func NewEOF() Token {
	return Token{Kind: EOF, Text: EOFText}
}

// Value returns the token's value: the integer for Number tokens and the
// text for every other kind
func (t Token) Value() interface{} {
	if t.Kind == Number {
		return t.Int
	}
	return t.Text
}

// ValueString returns the value as it is printed in runner output
func (t Token) ValueString() string {
	if t.Kind == Number {
		return strconv.Itoa(t.Int)
	}
	return t.Text
}

// String returns a representation like NUMBER(42) or EOF
func (t Token) String() string {
	if t.Kind == EOF {
		return EOFText
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.ValueString())
}

// IsOperatorChar reports whether ch is one of the four operator characters
func IsOperatorChar(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/':
		return true
	default:
		return false
	}
}

var keywords = map[string]struct{}{
	"if":    {},
	"then":  {},
	"else":  {},
	"while": {},
	"do":    {},
}

// IsKeyword reports whether s is exactly one of the keywords (case-sensitive)
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// Keywords returns the keyword set in sorted order
func Keywords() []string {
	result := make([]string, 0, len(keywords))
	for k := range keywords {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
