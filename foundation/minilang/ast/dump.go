// File: dump.go
// Title: minilang AST Serialization
// Description: Converts a syntax tree into a plain data structure that
//              encodes to JSON or YAML for the CLI dump commands.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial dump support

package ast

// Dump is the serializable form of a node
type Dump struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Value    interface{} `json:"value,omitempty" yaml:"value,omitempty"`
	Children []Dump      `json:"children,omitempty" yaml:"children,omitempty"`
}

// dumpVisitor builds a Dump tree. Leaves are appended to the children of
// the most recent expression.
type dumpVisitor struct {
	root *Dump
}

func (dv *dumpVisitor) VisitExpression(expr *Expression) error {
	dv.root = &Dump{Kind: "Expression", Children: make([]Dump, 0, expr.Len())}
	return nil
}

func (dv *dumpVisitor) VisitFactor(factor *Factor) error {
	dv.add(Dump{Kind: "Factor", Value: factor.Value()})
	return nil
}

func (dv *dumpVisitor) VisitIdentifier(ident *Identifier) error {
	dv.add(Dump{Kind: "Identifier", Value: ident.Name()})
	return nil
}

func (dv *dumpVisitor) add(d Dump) {
	if dv.root == nil {
		dv.root = &d
		return
	}
	dv.root.Children = append(dv.root.Children, d)
}

// DumpTree returns the serializable form of node
func DumpTree(node Node) Dump {
	visitor := &dumpVisitor{}
	_ = Walk(visitor, node)
	if visitor.root == nil {
		return Dump{}
	}
	return *visitor.root
}
