// Package utils has rune/byte offset helpers for line-based buffers.
package utils

import "unicode/utf8"

// RuneIndexToByteOffset converts a rune index to a byte offset in line.
// An index past the end clamps to len(line).
func RuneIndexToByteOffset(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	for currentRune := 0; byteOffset < len(line) && currentRune < runeIndex; currentRune++ {
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
	}
	return byteOffset
}

// ByteOffsetToRuneIndex converts a byte offset to a rune index in line.
func ByteOffsetToRuneIndex(line []byte, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	return utf8.RuneCount(line[:byteOffset])
}
