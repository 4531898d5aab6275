package ingest

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/memload/internal/domain"
)

func TestXALZ_RoundTrip(t *testing.T) {
	image := bytes.Repeat([]byte{0x4d, 0x5a, 0x90, 0x00}, 1024)

	packed, err := CompressXALZ(image, 42)
	require.NoError(t, err)
	require.True(t, IsXALZ(packed))
	assert.Less(t, len(packed), len(image))

	hdr, err := ParseXALZHeader(packed)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), hdr.DescriptorIndex)
	assert.Equal(t, uint32(len(image)), hdr.UncompressedLength)

	out, err := DecompressXALZ(packed)
	require.NoError(t, err)
	assert.Equal(t, image, out)
}

func TestCompressXALZ_Incompressible(t *testing.T) {
	_, err := CompressXALZ(nil, 0)
	assert.ErrorIs(t, err, ErrIncompressible)

	_, err = CompressXALZ([]byte{1, 2, 3}, 0)
	assert.ErrorIs(t, err, ErrIncompressible)
}

func TestIsXALZ(t *testing.T) {
	assert.False(t, IsXALZ(nil))
	assert.False(t, IsXALZ([]byte("XALZ")), "header too short")
	assert.False(t, IsXALZ([]byte("MZ\x90\x00\x03\x00\x00\x00\x04\x00\x00\x00")))
	assert.True(t, IsXALZ([]byte("XALZ\x00\x00\x00\x00\x10\x00\x00\x00")))
}

func TestDecompressXALZ_Invalid(t *testing.T) {
	header := func(length uint32) []byte {
		b := make([]byte, xalzHeaderSize)
		binary.LittleEndian.PutUint32(b, xalzMagic)
		binary.LittleEndian.PutUint32(b[8:], length)
		return b
	}

	tests := []struct {
		name string
		raw  []byte
	}{
		{"not xalz", []byte("MZ not compressed")},
		{"zero length", header(0)},
		{"missing block", header(64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecompressXALZ(tt.raw)
			assert.ErrorIs(t, err, domain.ErrInvalidImage)
		})
	}
}

func TestDecompressXALZ_LengthMismatch(t *testing.T) {
	image := bytes.Repeat([]byte("abcd"), 256)
	packed, err := CompressXALZ(image, 0)
	require.NoError(t, err)

	// Announce more bytes than the block holds.
	binary.LittleEndian.PutUint32(packed[8:], uint32(len(image)+16))

	_, err = DecompressXALZ(packed)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}
