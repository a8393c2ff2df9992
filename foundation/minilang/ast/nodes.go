// File: nodes.go
// Title: minilang AST Node Definitions
// Description: Defines the syntax tree: one root Expression whose children
//              are Factor (number) and Identifier leaves. Node and Term are
//              sealed interfaces so no other package can add node kinds.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	"github.com/msto63/minilang/foundation/minilang/token"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a compact representation of the node
	String() string

	// Accept dispatches to the Visitor method for the node's kind
	Accept(visitor Visitor) error

	// Validate checks the structural invariants of the node
	Validate() error

	node()
}

// Term is a leaf of the tree. Its single slot holds a token, never a node.
type Term interface {
	Node

	// Token returns the wrapped token
	Token() token.Token

	term()
}

// Expression is the root node: an ordered sequence of terms
type Expression struct {
	children []Term
}

// Factor wraps exactly one Number token
type Factor struct {
	tok token.Token
}

// Identifier wraps exactly one Identifier token
type Identifier struct {
	tok token.Token
}

// NewExpression creates an expression over a copy of children
func NewExpression(children ...Term) *Expression {
	return &Expression{children: append([]Term(nil), children...)}
}

// NewFactor creates a factor for a Number token
func NewFactor(tok token.Token) *Factor {
	return &Factor{tok: tok}
}

// NewIdentifier creates an identifier node for an Identifier token
func NewIdentifier(tok token.Token) *Identifier {
	return &Identifier{tok: tok}
}

// Implementation of Node interface for Expression

func (e *Expression) node() {}

// Children returns a copy of the terms in construction order
func (e *Expression) Children() []Term {
	return append([]Term(nil), e.children...)
}

// Len returns the number of terms
func (e *Expression) Len() int {
	return len(e.children)
}

// Child returns the i-th term
func (e *Expression) Child(i int) Term {
	return e.children[i]
}

func (e *Expression) String() string {
	parts := make([]string, len(e.children))
	for i, child := range e.children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("Expression[%s]", strings.Join(parts, " "))
}

func (e *Expression) Accept(visitor Visitor) error {
	return visitor.VisitExpression(e)
}

func (e *Expression) Validate() error {
	for i, child := range e.children {
		if child == nil {
			return fmt.Errorf("child %d is nil", i)
		}
		if err := child.Validate(); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

// Implementation of Term interface for Factor

func (f *Factor) node() {}
func (f *Factor) term() {}

func (f *Factor) Token() token.Token {
	return f.tok
}

// Value returns the number carried by the factor
func (f *Factor) Value() int {
	return f.tok.Int
}

func (f *Factor) String() string {
	return fmt.Sprintf("Factor(%d)", f.tok.Int)
}

func (f *Factor) Accept(visitor Visitor) error {
	return visitor.VisitFactor(f)
}

func (f *Factor) Validate() error {
	if f.tok.Kind != token.Number {
		return fmt.Errorf("factor wraps %s token, want %s", f.tok.Kind, token.Number)
	}
	return nil
}

// Implementation of Term interface for Identifier

func (i *Identifier) node() {}
func (i *Identifier) term() {}

func (i *Identifier) Token() token.Token {
	return i.tok
}

// Name returns the identifier text
func (i *Identifier) Name() string {
	return i.tok.Text
}

func (i *Identifier) String() string {
	return fmt.Sprintf("Identifier(%s)", i.tok.Text)
}

func (i *Identifier) Accept(visitor Visitor) error {
	return visitor.VisitIdentifier(i)
}

func (i *Identifier) Validate() error {
	if i.tok.Kind != token.Identifier {
		return fmt.Errorf("identifier wraps %s token, want %s", i.tok.Kind, token.Identifier)
	}
	if i.tok.Text == "" {
		return fmt.Errorf("identifier name is empty")
	}
	return nil
}
