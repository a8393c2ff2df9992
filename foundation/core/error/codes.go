// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              minilang pipeline (lexing, parsing, output) and of the
//              surrounding configuration and CLI layers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to pipeline codes for minilang

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Pipeline codes
	CodeLexical      Code = "LEXICAL_ERROR"
	CodeSyntax       Code = "SYNTAX_ERROR"
	CodeInputTooLong Code = "INPUT_TOO_LONG"
	CodeOutput       Code = "OUTPUT_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeCanceled,
		CodeLexical, CodeSyntax, CodeInputTooLong, CodeOutput,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeInputTooLong:
		return "pipeline"
	case CodeOutput:
		return "output"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeLexical, CodeSyntax, CodeInputTooLong, CodeInvalidInput:
		return 1
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 2
	default:
		return 3
	}
}
