package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF16Column(t *testing.T) {
	line := "a😀é="
	assert.Equal(t, uint32(0), utf16Column(line, 0))
	assert.Equal(t, uint32(1), utf16Column(line, 1))
	assert.Equal(t, uint32(3), utf16Column(line, 5))
	assert.Equal(t, uint32(4), utf16Column(line, 7))
	assert.Equal(t, uint32(5), utf16Column(line, 8))
	assert.Equal(t, uint32(6), utf16Column(line, 9), "past the end counts bytes")
}

func TestByteColumn(t *testing.T) {
	line := "a😀é="
	assert.Equal(t, 0, byteColumn(line, 0))
	assert.Equal(t, 1, byteColumn(line, 1))
	assert.Equal(t, 1, byteColumn(line, 2), "inside a surrogate pair")
	assert.Equal(t, 5, byteColumn(line, 3))
	assert.Equal(t, 7, byteColumn(line, 4))
	assert.Equal(t, 8, byteColumn(line, 5))
	assert.Equal(t, 8, byteColumn(line, 99))
}
