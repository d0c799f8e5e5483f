package output

import (
	"io"
	"os"
)

// ResolveColorMode determines whether human output is styled, given the
// --color flag and the detected TTY state:
//   - "never":  always plain
//   - "always": always styled
//   - "auto" (or anything else): styled only on a terminal
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is an *os.File attached to a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	stat, err := file.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}
