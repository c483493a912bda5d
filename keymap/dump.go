package keymap

import (
	"fmt"
	"strings"
)

// DumpFrame renders a protocol frame as hex bytes grouped in 4-byte columns
// with a 4-digit offset prefix per line. External tooling parses this output,
// so the format must not change.
func DumpFrame(frame []byte) string {
	var b strings.Builder

	for off := 0; off < len(frame); off += 4 {
		end := off + 4
		if end > len(frame) {
			end = len(frame)
		}

		hexvals := make([]string, 0, 4)
		for _, v := range frame[off:end] {
			hexvals = append(hexvals, fmt.Sprintf("%02x", v))
		}
		fmt.Fprintf(&b, "%04x  %s\n", off, strings.Join(hexvals, " "))
	}

	return b.String()
}
