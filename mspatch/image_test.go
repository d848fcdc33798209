package mspatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionBytes(t *testing.T) {
	p := Patch{Name: "Jump", Offset: 2, Original: []byte{0xAA, 0xBB}, Patched: []byte{0xCC, 0xDD}}
	img := LoadImage([]byte{0, 1, 0x11, 0x22, 4}, "dump.bin")

	original, current, patched := img.RegionBytes(p)
	assert.Equal(t, []byte{0xAA, 0xBB}, original)
	assert.Equal(t, []byte{0x11, 0x22}, current)
	assert.Equal(t, []byte{0xCC, 0xDD}, patched)
	assert.Equal(t, "dump.bin", img.Path())

	// Returned slices are copies, not views into the buffer.
	current[0] = 0xFF
	assert.Equal(t, byte(0x11), img.Bytes()[2])
}

func TestRegionBytesTruncatedImage(t *testing.T) {
	p := Patch{Name: "Jump", Offset: 2, Original: []byte{0xAA, 0xBB}, Patched: []byte{0xCC, 0xDD}}

	_, current, _ := LoadImage([]byte{0, 1, 0x11}, "").RegionBytes(p)
	assert.Equal(t, []byte{0x11}, current)

	_, current, _ = LoadImage([]byte{0, 1}, "").RegionBytes(p)
	assert.Empty(t, current)
}
