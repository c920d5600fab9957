// Command zhconv is a thin CLI collaborator around the zhconv library: it resolves a target
// variant and an optional extra ruleset, then converts stdin/stdout or a list of files in
// place (spec §6). The conversion core itself is a pure library; everything in this package is
// I/O, flag handling, and presentation.
package main

import (
	"os"

	"zhconv/internal/zhlog"
)

func main() {
	zhlog.InitFromEnv()
	if err := Execute(); err != nil {
		printError("zhconv: %v\n", err)
		os.Exit(1)
	}
}
