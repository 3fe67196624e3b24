package formatter

import (
	"bytes"
	"unicode/utf8"
)

// isLineBreak reports whether r terminates a line. Covers the ASCII
// breaks plus NEL and the Unicode line/paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '', ' ', ' ':
		return true
	}
	return false
}

// isHorizontalSpace reports whether r is horizontal whitespace that
// gets absorbed into an adjacent break run. It never starts a
// replacement on its own.
func isHorizontalSpace(r rune) bool {
	switch r {
	case ' ', '\t', ' ':
		return true
	}
	return false
}

// Flatten collapses every maximal run of line breaks, together with
// any horizontal whitespace touching the run, into exactly one copy
// of repl. Runs at the start or end of the string collapse like any
// other, so the result may begin or end with repl. Flatten is
// idempotent as long as repl itself contains no line breaks.
func Flatten(s, repl string) string {
	if !containsLineBreak(s) {
		return s
	}
	buf := getBuffer()
	defer putBuffer(buf)
	flattenInto(buf, []byte(s), repl)
	return buf.String()
}

func containsLineBreak(s string) bool {
	for _, r := range s {
		if isLineBreak(r) {
			return true
		}
	}
	return false
}

// flattenInto applies the Flatten rule to b, writing the result into
// buf. Plain horizontal whitespace with no break in reach is copied
// through untouched.
func flattenInto(buf *bytes.Buffer, b []byte, repl string) {
	start := 0 // start of the pending literal segment
	i := 0
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if !isLineBreak(r) && !isHorizontalSpace(r) {
			i += size
			continue
		}

		// Scan the whole whitespace run and note whether it contains
		// an actual line break.
		j := i
		sawBreak := false
		for j < len(b) {
			r2, size2 := utf8.DecodeRune(b[j:])
			if isLineBreak(r2) {
				sawBreak = true
			} else if !isHorizontalSpace(r2) {
				break
			}
			j += size2
		}

		if !sawBreak {
			// Horizontal whitespace only, keep it.
			i = j
			continue
		}

		buf.Write(b[start:i])
		buf.WriteString(repl)
		start = j
		i = j
	}
	buf.Write(b[start:])
}
