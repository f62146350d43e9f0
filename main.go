package main

import (
	"runtime/debug"

	"github.com/chatter/keybar/internal/cli"
)

// version is set from build info or falls back to "dev"
var version = "dev"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
}

func main() {
	cli.Execute(version)
}
