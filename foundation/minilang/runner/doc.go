// Package runner walks a minilang syntax tree and reports its leaves.
//
// Every Factor produces the line "Factor: <number>" and every Identifier
// the line "Identifier: <name>", in depth-first order. An empty expression
// produces no output. Lines returns the same lines without writing them.
package runner
