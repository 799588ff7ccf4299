// Package main provides the entry point for the coursesync CLI tool.
package main

import (
	"github.com/fairwaylabs/coursesync/cmd/coursesync/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
