package lsp

import (
	"unicode/utf16"
)

// LSP positions count UTF-16 code units within a line; tokens and diagnostics carry
// byte columns. These helpers convert between the two for a single line of text.

// utf16Column returns the UTF-16 column of byte column col in line. Columns past the end
// of the line (the EOF token after a trailing operator) count one unit per byte.
func utf16Column(line string, col int) uint32 {
	if col <= 0 {
		return 0
	}
	extra := 0
	if col > len(line) {
		extra = col - len(line)
		col = len(line)
	}
	return utf16Len(line[:col]) + uint32(extra)
}

// byteColumn returns the byte column of UTF-16 column char in line, clamped to the line.
// A column inside a surrogate pair resolves to the start of that rune.
func byteColumn(line string, char uint32) int {
	var units uint32
	for i, r := range line {
		if units >= char {
			return i
		}
		units += runeUnits(r)
		if units > char {
			return i
		}
	}
	return len(line)
}

func utf16Len(s string) uint32 {
	var n uint32
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

// runeUnits counts an invalid byte (decoded as RuneError) as one unit.
func runeUnits(r rune) uint32 {
	if n := utf16.RuneLen(r); n > 0 {
		return uint32(n)
	}
	return 1
}
