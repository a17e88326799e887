package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneIndexToByteOffset(t *testing.T) {
	line := []byte("héllo")
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"start", 0, 0},
		{"negative", -3, 0},
		{"after multibyte", 2, 3},
		{"end", 5, 6},
		{"past end clamps", 9, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RuneIndexToByteOffset(line, tt.index))
		})
	}
}

func TestByteOffsetToRuneIndex(t *testing.T) {
	line := []byte("héllo")
	assert.Equal(t, 0, ByteOffsetToRuneIndex(line, 0))
	assert.Equal(t, 2, ByteOffsetToRuneIndex(line, 3))
	assert.Equal(t, 5, ByteOffsetToRuneIndex(line, 100))
}
