// File: visitor.go
// Title: minilang AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing the syntax
//              tree, the depth-first Walk driver, and visitors for string
//              rendering, validation and leaf collection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor has one method per node kind. Adding a node kind adds a method
// here, which turns every unhandled kind into a compile error.
type Visitor interface {
	VisitExpression(expr *Expression) error
	VisitFactor(factor *Factor) error
	VisitIdentifier(ident *Identifier) error
}

// Walk traverses node depth-first: a node is visited before its children,
// children left to right. The first error stops the walk.
func Walk(visitor Visitor, node Node) error {
	if err := node.Accept(visitor); err != nil {
		return err
	}

	if expr, ok := node.(*Expression); ok {
		for _, child := range expr.children {
			if err := Walk(visitor, child); err != nil {
				return err
			}
		}
	}
	return nil
}

// StringVisitor renders an indented tree, one node per line
type StringVisitor struct {
	buffer strings.Builder
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built string representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

func (sv *StringVisitor) VisitExpression(expr *Expression) error {
	fmt.Fprintf(&sv.buffer, "Expression (%d terms)\n", expr.Len())
	return nil
}

func (sv *StringVisitor) VisitFactor(factor *Factor) error {
	fmt.Fprintf(&sv.buffer, "  Factor: %d\n", factor.Value())
	return nil
}

func (sv *StringVisitor) VisitIdentifier(ident *Identifier) error {
	fmt.Fprintf(&sv.buffer, "  Identifier: %s\n", ident.Name())
	return nil
}

// ValidationVisitor validates every node and collects the errors
type ValidationVisitor struct {
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

func (vv *ValidationVisitor) VisitExpression(expr *Expression) error {
	for i, child := range expr.children {
		if child == nil {
			vv.errors = append(vv.errors, fmt.Errorf("expression child %d is nil", i))
		}
	}
	return nil
}

func (vv *ValidationVisitor) VisitFactor(factor *Factor) error {
	if err := factor.Validate(); err != nil {
		vv.errors = append(vv.errors, err)
	}
	return nil
}

func (vv *ValidationVisitor) VisitIdentifier(ident *Identifier) error {
	if err := ident.Validate(); err != nil {
		vv.errors = append(vv.errors, err)
	}
	return nil
}

// CollectorVisitor collects the leaves of a tree in traversal order
type CollectorVisitor struct {
	Factors     []*Factor
	Identifiers []*Identifier
	Leaves      []Term
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{}
}

func (cv *CollectorVisitor) VisitExpression(expr *Expression) error {
	return nil
}

func (cv *CollectorVisitor) VisitFactor(factor *Factor) error {
	cv.Factors = append(cv.Factors, factor)
	cv.Leaves = append(cv.Leaves, factor)
	return nil
}

func (cv *CollectorVisitor) VisitIdentifier(ident *Identifier) error {
	cv.Identifiers = append(cv.Identifiers, ident)
	cv.Leaves = append(cv.Leaves, ident)
	return nil
}

// Utility functions for working with visitors

// ASTToString converts a tree to its indented string representation
func ASTToString(node Node) string {
	visitor := NewStringVisitor()
	_ = Walk(visitor, node)
	return visitor.String()
}

// ValidateAST validates a tree and returns all validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	_ = Walk(visitor, node)
	return visitor.Errors()
}

// CollectLeaves returns the leaves of a tree in traversal order
func CollectLeaves(node Node) []Term {
	visitor := NewCollectorVisitor()
	_ = Walk(visitor, node)
	return visitor.Leaves
}
