// Package format provides shared formatting utilities for human-readable output.
package format

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const esc = '\x1b'

type scanState int

const (
	stateText scanState = iota
	stateEscape
	stateCSI
)

// VisibleWidth returns the number of terminal columns s occupies, ignoring
// ANSI escape sequences. Every rune outside an escape counts as one column.
func VisibleWidth(s string) int {
	var (
		state = stateText
		width int
	)

	for _, r := range norm.NFKC.String(s) {
		switch state {
		case stateText:
			if r == esc {
				state = stateEscape

				continue
			}

			width++
		case stateEscape:
			switch {
			case r == '[':
				state = stateCSI
			case r >= 0x40 && r <= 0x5f:
				state = stateText
			}
		case stateCSI:
			if r != '[' && r >= 0x40 && r <= 0x7e {
				state = stateText
			}
		}
	}

	return width
}

// PadRight appends spaces to s until it is width columns wide.
func PadRight(s string, width int) string {
	return s + Spaces(width-VisibleWidth(s))
}

// Spaces returns n spaces, or the empty string when n is not positive.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}
