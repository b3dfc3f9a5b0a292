package format

import (
	"strconv"
	"strings"
)

// Style is the presentation in effect for a run of text.
type Style struct {
	// Foreground is the SGR colour code (30-37, 90-97), or 0 for the default.
	Foreground int
	Bold       bool
	Faint      bool
}

// Span is a run of text sharing one Style.
type Span struct {
	Text  string
	Style Style
}

// styleState tracks the SGR state while a line is scanned.
type styleState struct {
	current Style
}

func (s *styleState) applySGR(params string) {
	if params == "" {
		s.current = Style{}

		return
	}

	for _, p := range strings.Split(params, ";") {
		if p == "" {
			continue
		}

		code, err := strconv.Atoi(p)
		if err != nil {
			continue
		}

		switch {
		case code == 0:
			s.current = Style{}
		case code == 1:
			s.current.Bold = true
		case code == 2:
			s.current.Faint = true
		case code == 22:
			s.current.Bold = false
			s.current.Faint = false
		case code == 39:
			s.current.Foreground = 0
		case code >= 30 && code <= 37, code >= 90 && code <= 97:
			s.current.Foreground = code
		}
	}
}

// Spans splits a line into styled runs. SGR sequences (ESC [ ... m) update the
// style; any other escape sequence is dropped. Empty runs are omitted.
func Spans(line string) []Span {
	var (
		spans []Span
		state styleState
		text  strings.Builder
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}

		spans = append(spans, Span{Text: text.String(), Style: state.current})
		text.Reset()
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		if runes[i] != esc {
			text.WriteRune(runes[i])

			continue
		}

		if i+1 >= len(runes) || runes[i+1] != '[' {
			// Short escape: skip ESC and its final byte.
			i++

			continue
		}

		end := i + 2
		for end < len(runes) && (runes[end] < 0x40 || runes[end] > 0x7e) {
			end++
		}

		if end >= len(runes) {
			// Unterminated sequence swallows the rest of the line.
			break
		}

		if runes[end] == 'm' {
			flush()
			state.applySGR(string(runes[i+2 : end]))
		}

		i = end
	}

	flush()

	return spans
}

// Strip removes escape sequences from s.
func Strip(s string) string {
	var b strings.Builder
	for _, span := range Spans(s) {
		b.WriteString(span.Text)
	}

	return b.String()
}
