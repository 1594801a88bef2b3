// File: lixenwraith/flags/usage.go
package flags

import (
	"fmt"
	"io"
	"os"
)

// osExit is swapped out in tests.
var osExit = os.Exit

// usagePad is the margin added past the longest flag name when aligning
// descriptions.
const usagePad = 5

// PrintUsage writes every flag in declaration order: the config flag
// first when registered, then registered flags with their defaults, then
// a synthesized help entry. Long names are padded to the longest name
// plus a fixed margin.
func (fs *FlagSet) PrintUsage(w io.Writer) {
	width := len(fs.configName)
	for _, f := range fs.flags {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}
	width += usagePad

	fmt.Fprintf(w, "FLAGS\n")

	if fs.configName != "" {
		printShort(w, fs.configShort)
		fmt.Fprintf(w, "--%-*s %s\n", width, fs.configName, fs.configDesc)
	}

	for _, f := range fs.flags {
		printShort(w, f.Short)
		fmt.Fprintf(w, "--%-*s %s", width, f.Name, f.Description)
		if f.defText != "" {
			fmt.Fprintf(w, " (default: %s)", f.defText)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "  -h, --%-*s Show this help message\n", width, "help")
	fmt.Fprintf(w, "\n")
}

func printShort(w io.Writer, short byte) {
	if short != 0 {
		fmt.Fprintf(w, "  -%c, ", short)
	} else {
		fmt.Fprintf(w, "      ")
	}
}

// PrintError reports the retained error record and exits: usage and exit
// code 0 for help, an ERROR line plus usage and exit code 1 for any
// other recorded failure. It is a no-op when the last parse succeeded.
func (fs *FlagSet) PrintError(w io.Writer) {
	switch fs.errCode {
	case ErrCodeNone:
		return
	case ErrCodeHelp:
		fs.PrintUsage(w)
		osExit(0)
		return
	}

	fmt.Fprintf(w, "ERROR: %s\n\n", fs.Err().Error())
	fs.PrintUsage(w)
	osExit(1)
}
