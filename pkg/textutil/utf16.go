package textutil

import (
	"unicode/utf8"
)

// UTF16Len returns the number of UTF-16 code units needed to encode s.
// Runes in the Basic Multilingual Plane take one unit, runes above it
// take a surrogate pair. This is the exact count the LSP position
// encoding expects.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// ApproxUTF16Len approximates the UTF-16 code-unit length of s by
// collapsing every non-ASCII rune to a fixed two-unit placeholder
// before counting. This overcounts BMP characters that encode as a
// single code unit and is only coincidentally correct for astral
// characters. It exists for hosts without a native UTF-16 width
// facility; prefer UTF16Len.
func ApproxUTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r < utf8.RuneSelf {
			n++
		} else {
			n += 2
		}
	}
	return n
}

// UTF16OffsetInLine converts a byte column within a single line of text
// to a UTF-16 code-unit offset. The column is clamped to the line
// length, and a column landing inside a multi-byte sequence counts the
// containing rune in full.
func UTF16OffsetInLine(line string, byteCol int) int {
	if byteCol < 0 {
		return 0
	}
	if byteCol > len(line) {
		byteCol = len(line)
	}

	offset := 0
	for i := 0; i < byteCol; {
		r, size := utf8.DecodeRuneInString(line[i:])
		if size == 0 {
			break
		}
		if r > 0xFFFF {
			offset += 2
		} else {
			offset++
		}
		i += size
	}
	return offset
}
