// ============================================================================
// minilang - Tokenizer, Parser and Runner for a tiny language
// ============================================================================
//
// Package:     version
// Description: Central version management for minilang
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the minilang components
const (
	// Release version of the CLI
	Minilang = "0.1.0"

	// Pipeline version; changes whenever token or tree output changes
	Pipeline = "0.1.0"
)

// Build information, set via -ldflags at build time
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Pipeline  string `json:"pipeline" yaml:"pipeline"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Minilang,
		Pipeline:  Pipeline,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("minilang %s (pipeline %s, commit %s, built %s, %s %s)",
		i.Version, i.Pipeline, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
