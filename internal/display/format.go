// Package display provides output formatting helpers: byte sizes, summary
// tables, and the startup banner.
package display

import (
	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, ...).
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}
