// File: parser.go
// Title: minilang Parser
// Description: Implements the parsing phase. Consumes a token slice with
//              a single forward cursor and builds one Expression whose
//              children are Factor and Identifier terms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	mllog "github.com/msto63/minilang/foundation/core/log"
	mlast "github.com/msto63/minilang/foundation/minilang/ast"
	"github.com/msto63/minilang/foundation/minilang/token"
)

// Parser builds syntax trees. It holds configuration only; every Parse
// call works on its own cursor, so a Parser can be shared.
type Parser struct {
	logger *mllog.Logger
}

// Options configures parser behavior
type Options struct {
	Logger *mllog.Logger
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mllog.GetDefault()
	}

	return &Parser{
		logger: opts.Logger.WithField("component", "minilang-parser"),
	}
}

// cursor is the parse state for one token slice
type cursor struct {
	tokens   []token.Token
	position int
}

// current returns the token under the cursor. Running off the end of a
// slice without EOF yields EOF.
func (c *cursor) current() token.Token {
	if c.position >= len(c.tokens) {
		return token.NewEOF()
	}
	return c.tokens[c.position]
}

func (c *cursor) advance() {
	c.position++
}

// Parse builds the Expression for tokens. Operators are never valid in
// term position, so any Operator token fails the parse.
func (p *Parser) Parse(tokens []token.Token) (*mlast.Expression, error) {
	p.logger.Debug("Parsing token stream", mllog.Fields{
		"tokens": len(tokens),
	})

	c := &cursor{tokens: tokens}

	expr, err := p.parseExpression(c)
	if err != nil {
		p.logger.Debug("Parsing failed", mllog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Parsing completed", mllog.Fields{
		"terms": expr.Len(),
	})
	return expr, nil
}

// parseExpression parses terms until the cursor sits on EOF
func (p *Parser) parseExpression(c *cursor) (*mlast.Expression, error) {
	var terms []mlast.Term

	for c.current().Kind != token.EOF {
		term, err := p.parseTerm(c)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	return mlast.NewExpression(terms...), nil
}

// parseTerm parses a single Number or Identifier
func (p *Parser) parseTerm(c *cursor) (mlast.Term, error) {
	tok := c.current()

	switch tok.Kind {
	case token.Number:
		c.advance()
		p.logger.Trace("Parsed factor", mllog.Fields{"value": tok.Int})
		return mlast.NewFactor(tok), nil
	case token.Identifier:
		c.advance()
		p.logger.Trace("Parsed identifier", mllog.Fields{"name": tok.Text})
		return mlast.NewIdentifier(tok), nil
	default:
		return nil, &ParseError{Token: tok, Index: c.position}
	}
}

var defaultParser = New(Options{Logger: mllog.Discard()})

// Parse parses tokens with a parser that does not log
func Parse(tokens []token.Token) (*mlast.Expression, error) {
	return defaultParser.Parse(tokens)
}

// ParseString tokenizes and parses input in one call
func ParseString(input string) (*mlast.Expression, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
