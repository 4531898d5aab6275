package ingest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/pierrec/lz4/v4"

	"github.com/bft-labs/memload/internal/domain"
)

// XALZ header layout, all fields little-endian uint32:
//
//	magic | descriptor index | uncompressed length
//
// followed by a single LZ4 block.
const (
	xalzMagic      = 0x5A4C4158 // "XALZ"
	xalzHeaderSize = 12
)

// ErrIncompressible is returned by CompressXALZ when LZ4 cannot shrink the image.
var ErrIncompressible = errors.New("ingest: image is incompressible")

// XALZHeader is the decoded header of a compressed image.
type XALZHeader struct {
	DescriptorIndex    uint32
	UncompressedLength uint32
}

// IsXALZ reports whether raw starts with the XALZ magic.
func IsXALZ(raw []byte) bool {
	return len(raw) >= xalzHeaderSize && binary.LittleEndian.Uint32(raw) == xalzMagic
}

// ParseXALZHeader decodes the header of a compressed image.
func ParseXALZHeader(raw []byte) (XALZHeader, error) {
	if !IsXALZ(raw) {
		return XALZHeader{}, fmt.Errorf("%w: missing XALZ header", domain.ErrInvalidImage)
	}
	return XALZHeader{
		DescriptorIndex:    binary.LittleEndian.Uint32(raw[4:]),
		UncompressedLength: binary.LittleEndian.Uint32(raw[8:]),
	}, nil
}

// DecompressXALZ decodes a compressed image into a newly allocated buffer of
// exactly the length announced by its header.
func DecompressXALZ(raw []byte) ([]byte, error) {
	hdr, err := ParseXALZHeader(raw)
	if err != nil {
		return nil, err
	}
	if hdr.UncompressedLength == 0 {
		return nil, fmt.Errorf("%w: zero uncompressed length", domain.ErrInvalidImage)
	}

	image := make([]byte, hdr.UncompressedLength)
	n, err := lz4.UncompressBlock(raw[xalzHeaderSize:], image)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %v", domain.ErrInvalidImage, err)
	}
	if n != len(image) {
		return nil, fmt.Errorf("%w: lz4 produced %d bytes, header announced %d",
			domain.ErrInvalidImage, n, len(image))
	}
	return image, nil
}

// CompressXALZ wraps image in an XALZ envelope. It returns ErrIncompressible
// when the compressed form would not be smaller than the input.
func CompressXALZ(image []byte, descriptorIndex uint32) ([]byte, error) {
	if len(image) == 0 {
		return nil, ErrIncompressible
	}
	if uint64(len(image)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: image of %d bytes does not fit an XALZ header", domain.ErrInvalidImage, len(image))
	}

	out := make([]byte, xalzHeaderSize+lz4.CompressBlockBound(len(image)))
	n, err := lz4.CompressBlock(image, out[xalzHeaderSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 || xalzHeaderSize+n >= len(image) {
		return nil, ErrIncompressible
	}

	binary.LittleEndian.PutUint32(out[0:], xalzMagic)
	binary.LittleEndian.PutUint32(out[4:], descriptorIndex)
	binary.LittleEndian.PutUint32(out[8:], uint32(len(image)))
	return out[:xalzHeaderSize+n], nil
}
