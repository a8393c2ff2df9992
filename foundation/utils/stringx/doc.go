// Package stringx provides small string helpers used across minilang.
//
// Truncate keeps log fields short without splitting multi-byte characters,
// SplitLines turns captured output into report lines, and the blank helpers
// pick defaults for user input.
package stringx
