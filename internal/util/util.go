// Package util holds platform helpers for the command line entry point.
package util

import (
	"bufio"
	"fmt"
	"io"
)

// PauseBeforeExit prints prompt to w and blocks until a line (or EOF) is read
// from r when fromGUI is set, so a console opened by double clicking the
// executable stays readable.
func PauseBeforeExit(fromGUI bool, r io.Reader, w io.Writer, prompt string) {
	if !fromGUI {
		return
	}
	_, _ = fmt.Fprint(w, prompt)
	_, _ = bufio.NewReader(r).ReadString('\n')
}
