package display

import (
	"fmt"
	"os"

	"github.com/backmassage/pics/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, ` ____  _
|  _ \(_) ___ ___
| |_) | |/ __/ __|
|  __/| | (__\__ \
|_|   |_|\___|___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
