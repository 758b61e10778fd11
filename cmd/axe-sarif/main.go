package main

import (
	"axesarif/internal/cli"
	_ "axesarif/internal/rules/custom"
)

// These variables are populated by the build via -ldflags (-X main.version=...).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetBuildInfo(version, commit, date)
	cli.Execute()
}
