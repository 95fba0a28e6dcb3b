// Package console implements the console attachment modes for launched
// servers. The inherit mode hands the parent's standard streams straight
// to the child; the proxy mode pipes them and forwards line by line.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/cancelreader"
)

// forwardLines copies r to w one line at a time until r is exhausted.
// A trailing chunk without a final newline is still forwarded. Read and
// write failures are reported on errw and end the loop.
func forwardLines(r io.Reader, w io.Writer, errw io.Writer, stream string) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if _, werr := io.WriteString(w, line); werr != nil {
				fmt.Fprintf(errw, "[console] %s write error: %v\n", stream, werr)
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(errw, "[console] %s read error: %v\n", stream, err)
			}
			return
		}
	}
}

// pumpInput copies parent input to the child's stdin one line at a time.
// EOF on the parent side closes the child's stdin so the child sees
// end-of-input. A cancelled read ends the pump silently.
func pumpInput(r io.Reader, w io.Writer, errw io.Writer, closeStdin func()) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if _, werr := io.WriteString(w, line); werr != nil {
				fmt.Fprintf(errw, "[console] stdin write error: %v\n", werr)
				return
			}
		}
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				closeStdin()
			case errors.Is(err, cancelreader.ErrCanceled):
			default:
				fmt.Fprintf(errw, "[console] stdin read error: %v\n", err)
			}
			return
		}
	}
}
