package display

import (
	"fmt"
	"os"

	"github.com/backmassage/bulkrename/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _           _ _
| |__  _   _| | | ___ __ ___ _ __   __ _ _ __ ___   ___
| '_ \| | | | | |/ / '__/ _ \ '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \
| |_) | |_| | |   <| | |  __/ | | | (_| | | | | | |  __/
|_.__/ \__,_|_|_|\_\_|  \___|_| |_|\__,_|_| |_| |_|\___|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
