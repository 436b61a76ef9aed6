// Package format turns templates, bare values, errors and stack traces into
// display strings for the text renderer.
//
// Templates use fmt verbs. Count performs the pre-pass that tells the
// dispatcher how many positional arguments a template consumes; Format and
// FormatColor render the template with exactly that many arguments, leaving
// missing ones empty.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Station-Manager/logkit/internal/ansi"
)

const flagChars = "+-# 0"

// Count returns the number of positional arguments template consumes.
// Non-string templates consume nothing. "%%" is a literal percent sign.
func Count(template any) int {
	s, ok := template.(string)
	if !ok {
		return 0
	}

	n, highest := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		if s[i] == '%' {
			continue
		}

	verb:
		for i < len(s) {
			c := s[i]
			switch {
			case strings.IndexByte(flagChars, c) >= 0, c >= '1' && c <= '9', c == '.':
				i++
			case c == '*':
				n++
				if n > highest {
					highest = n
				}
				i++
			case c == '[':
				end := strings.IndexByte(s[i:], ']')
				if end < 0 {
					i = len(s)
					break verb
				}
				if k, err := strconv.Atoi(s[i+1 : i+end]); err == nil && k > 0 {
					n = k - 1
				}
				i += end + 1
			default:
				n++
				if n > highest {
					highest = n
				}
				break verb
			}
		}
	}
	return highest
}

// Format renders template with args. Arguments beyond what the template
// consumes are dropped and missing ones render as empty.
func Format(template string, args ...any) string {
	return fmt.Sprintf(template, fit(template, args, false)...)
}

// FormatColor is Format with each substituted value highlighted when color
// is true.
func FormatColor(color bool, template string, args ...any) string {
	return fmt.Sprintf(template, fit(template, args, color)...)
}

func fit(template string, args []any, color bool) []any {
	n := Count(template)
	out := make([]any, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(args):
			out[i] = missing{}
		case color:
			out[i] = highlighted{v: args[i]}
		default:
			out[i] = args[i]
		}
	}
	return out
}

// missing stands in for an argument the caller did not supply.
type missing struct{}

func (missing) Format(fmt.State, rune) {}

type highlighted struct {
	v any
}

func (h highlighted) Format(s fmt.State, verb rune) {
	_, _ = io.WriteString(s, ansi.Cyan)
	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), h.v)
	_, _ = io.WriteString(s, ansi.Reset)
}
