// File: dump.go
// Title: minilang Token Serialization
// Description: Serializable form of a token for JSON and YAML dumps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial dump support

package token

// Dump is the serializable form of a token
type Dump struct {
	Kind  string      `json:"kind" yaml:"kind"`
	Value interface{} `json:"value" yaml:"value"`
}

// ToDump returns the serializable form of t
func (t Token) ToDump() Dump {
	return Dump{Kind: t.Kind.String(), Value: t.Value()}
}

// DumpAll converts a token slice
func DumpAll(tokens []Token) []Dump {
	result := make([]Dump, len(tokens))
	for i, tok := range tokens {
		result[i] = tok.ToDump()
	}
	return result
}
