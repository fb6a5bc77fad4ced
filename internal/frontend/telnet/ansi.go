// Package telnet serves dungeon sessions over raw TCP using the Telnet line
// protocol, with ANSI styling helpers for the renderer.
package telnet

import (
	"fmt"
	"strings"
)

// ANSI SGR sequences used by the renderer.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	BrightBlack  = "\033[90m"
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightWhite  = "\033[97m"
)

// Colorize wraps text in color and a trailing Reset. An empty color returns
// text unchanged.
func Colorize(color, text string) string {
	if color == "" {
		return text
	}
	return color + text + Reset
}

// Colorf formats its arguments and wraps the result like Colorize.
func Colorf(color, format string, args ...any) string {
	return Colorize(color, fmt.Sprintf(format, args...))
}

// StripANSI removes every CSI sequence (ESC '[' ... final byte) from s.
//
// Postcondition: The result contains no ESC '[' pairs that start a complete sequence.
func StripANSI(s string) string {
	if !strings.Contains(s, "\033[") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\033' || i+1 >= len(s) || s[i+1] != '[' {
			b.WriteByte(s[i])
			continue
		}
		j := i + 2
		for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
			j++
		}
		if j == len(s) {
			// unterminated: keep the remainder verbatim
			b.WriteString(s[i:])
			break
		}
		i = j
	}
	return b.String()
}
