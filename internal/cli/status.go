package cli

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"
)

// statusType selects the symbol and color of a status line.
type statusType int

const (
	successStatus statusType = iota
	generateStatus
	warningStatus
	errorStatus
)

var statusStyles = map[statusType]struct {
	symbol string
	color  *fcolor.Color
}{
	successStatus:  {"✔", fcolor.New(fcolor.FgGreen)},
	generateStatus: {"✚", fcolor.New(fcolor.Reset)},
	warningStatus:  {"⚠", fcolor.New(fcolor.FgYellow)},
	errorStatus:    {"✗", fcolor.New(fcolor.FgRed)},
}

// writeStatus prints one symbol-prefixed line. Color is dropped when the
// process is not attached to a terminal.
func writeStatus(w io.Writer, t statusType, format string, args ...any) {
	style := statusStyles[t]
	_, _ = style.color.Fprintf(w, "%s %s\n", style.symbol, fmt.Sprintf(format, args...))
}

func successf(w io.Writer, format string, args ...any) {
	writeStatus(w, successStatus, format, args...)
}

func generatef(w io.Writer, format string, args ...any) {
	writeStatus(w, generateStatus, format, args...)
}

func warningf(w io.Writer, format string, args ...any) {
	writeStatus(w, warningStatus, format, args...)
}

func errorf(w io.Writer, format string, args ...any) {
	writeStatus(w, errorStatus, format, args...)
}
