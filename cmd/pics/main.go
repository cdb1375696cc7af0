// Command pics organizes photo files: it separates JPEG and RAW files into
// subdirectories, renames them with a sequential prefixed scheme, and imports
// photos from an SD card into week folders.
package main

import (
	"fmt"
	"os"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "0.2.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Errors surfacing here are invocation errors (bad flags, bad dates,
	// missing directories). Per-file failures are logged by the pipelines
	// and do not affect the exit status.
	root, ctx := newRootCommand()
	defer ctx.closeLogger()

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pics: %v\n", err)
		return 1
	}
	return 0
}
