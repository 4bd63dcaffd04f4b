// Package transform converts ASCII letters and digits to and from their
// full-width forms.
package transform

import (
	"strings"

	"golang.org/x/text/width"
)

// ToHalfWidth narrows full-width Ａ-Ｚ, ａ-ｚ and ０-９. It reports whether
// anything changed.
func ToHalfWidth(s string) (string, bool) {
	return mapRunes(s, func(r rune) rune {
		p := width.LookupRune(r)
		if p.Kind() != width.EastAsianFullwidth {
			return r
		}
		if n := p.Narrow(); n != 0 && isAlnum(n) {
			return n
		}
		return r
	})
}

// ToFullWidth widens ASCII A-Z, a-z and 0-9. It reports whether anything
// changed.
func ToFullWidth(s string) (string, bool) {
	return mapRunes(s, func(r rune) rune {
		if !isAlnum(r) {
			return r
		}
		if w := width.LookupRune(r).Wide(); w != 0 {
			return w
		}
		return r
	})
}

func mapRunes(s string, fn func(rune) rune) (string, bool) {
	changed := false
	out := strings.Map(func(r rune) rune {
		m := fn(r)
		if m != r {
			changed = true
		}
		return m
	}, s)
	return out, changed
}

func isAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
