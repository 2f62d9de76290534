package ics

import (
	"strings"
	"unicode/utf8"
)

// Escape renders a free-text value per RFC 5545 TEXT rules: backslashes
// first, CR/CRLF normalized to LF, then newline, comma and semicolon.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	return s
}

// Unescape reverses Escape.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FoldLimit is the maximum physical line length before folding applies.
const FoldLimit = 75

// FoldLine splits a content line into physical lines no longer than limit,
// each continuation prefixed with a single space. Continuations are
// re-measured against the same limit. Folding approximates octets by bytes,
// which is exact for the ASCII-heavy content produced here.
func FoldLine(line string, limit int) []string {
	if limit <= 1 {
		limit = FoldLimit
	}
	if len(line) <= limit {
		return []string{line}
	}
	var out []string
	cur := line
	for len(cur) > limit {
		cut := limit
		// Never split inside a multi-octet UTF-8 sequence.
		for cut > 1 && !utf8.RuneStart(cur[cut]) {
			cut--
		}
		out = append(out, cur[:cut])
		cur = " " + cur[cut:]
	}
	return append(out, cur)
}
