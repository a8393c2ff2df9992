// Package ast defines the syntax tree built by the minilang parser.
//
// The tree has exactly two levels. The root is an Expression holding an
// ordered sequence of terms; every term is a leaf (Factor for numbers,
// Identifier for names) that wraps a single token. Node and Term are sealed
// interfaces: only this package can implement them, and the Visitor
// interface has one method per node kind.
//
// Nodes are immutable after construction. Walk drives a Visitor over a tree
// depth-first, children left to right:
//
//	leaves := ast.CollectLeaves(expr)
//	fmt.Print(ast.ASTToString(expr))
//
// DumpTree converts a tree to a plain structure suitable for JSON or YAML
// encoding.
package ast
