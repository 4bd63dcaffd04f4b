package search

import (
	"strconv"
	"strings"
)

// Unescape turns \n, \t, \r and \\ into their literal characters. Any other
// backslash is kept as typed.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 't':
				b.WriteByte('\t')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// expandTemplate rewrites a replacement written with $1, $&, $<name> and $$
// into regexp.Expand syntax. numGroups is the pattern's capture count; a
// numbered reference to a group that does not exist stays literal text.
func expandTemplate(repl string, numGroups int) string {
	if !strings.Contains(repl, "$") {
		return repl
	}

	var b strings.Builder
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(repl) {
			b.WriteString("$$")
			continue
		}

		next := repl[i+1]
		switch {
		case next == '$':
			b.WriteString("$$")
			i++
		case next == '&':
			b.WriteString("${0}")
			i++
		case isDigit(next):
			digits := repl[i+1 : i+2]
			if i+2 < len(repl) && isDigit(repl[i+2]) {
				if n, _ := strconv.Atoi(repl[i+1 : i+3]); n >= 1 && n <= numGroups {
					digits = repl[i+1 : i+3]
				}
			}
			if n, _ := strconv.Atoi(digits); n >= 1 && n <= numGroups {
				b.WriteString("${" + digits + "}")
			} else {
				b.WriteString("$$" + digits)
			}
			i += len(digits)
		case next == '<':
			end := strings.IndexByte(repl[i+2:], '>')
			if end < 0 {
				b.WriteString("$$")
				continue
			}
			b.WriteString("${" + repl[i+2:i+2+end] + "}")
			i += 2 + end
		case next == '{':
			end := strings.IndexByte(repl[i+1:], '}')
			if end < 0 {
				b.WriteString("$$")
				continue
			}
			b.WriteString(repl[i : i+2+end])
			i += 1 + end
		default:
			b.WriteString("$$")
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
