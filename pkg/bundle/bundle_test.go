package bundle

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/memload/internal/domain"
)

func sampleBundle() *Bundle {
	return New(7,
		Assembly{Name: "A.dll", Image: bytes.Repeat([]byte("MZ-a"), 100)},
		Assembly{Name: "B.dll", Image: []byte("MZ-b")},
	)
}

func TestEncodeDecode(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			in := sampleBundle()

			data, err := Encode(in, c)
			require.NoError(t, err)

			out, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode(sampleBundle(), CompressionNone)
	require.NoError(t, err)
	b, err := Encode(sampleBundle(), CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncode_ZstdIsFramed(t *testing.T) {
	data, err := Encode(sampleBundle(), CompressionZstd)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, zstdMagic))
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte{0xff, 0x00, 0x13}},
		{"broken zstd frame", append(append([]byte{}, zstdMagic...), 0x01, 0x02)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.ErrorIs(t, err, domain.ErrInvalidBundle)
		})
	}
}

func TestValidate(t *testing.T) {
	b := sampleBundle()
	require.NoError(t, b.Validate())

	b.Format = 99
	assert.ErrorIs(t, b.Validate(), domain.ErrInvalidBundle)

	b = sampleBundle()
	b.Add("", []byte("MZ"))
	assert.ErrorIs(t, b.Validate(), domain.ErrInvalidBundle)

	_, err := Encode(b, CompressionNone)
	assert.ErrorIs(t, err, domain.ErrInvalidBundle)
}

func TestNamesAndImages(t *testing.T) {
	b := sampleBundle()

	assert.Equal(t, []string{"A.dll", "B.dll"}, b.Names())
	images := b.Images()
	require.Len(t, images, 2)
	assert.Equal(t, []byte("MZ-b"), images[1])
	assert.Equal(t, 404, b.TotalBytes())
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in      string
		want    Compression
		wantErr bool
	}{
		{"", CompressionNone, false},
		{"none", CompressionNone, false},
		{"zstd", CompressionZstd, false},
		{"lz4", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCompression(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "app.bundle")
	in := sampleBundle()

	require.NoError(t, WriteFile(path, in, CompressionZstd))

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "app.bundle", entries[0].Name())
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.bundle"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPackDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.dll":     "MZ-b",
		"a.DLL":     "MZ-a",
		"tool.exe":  "MZ-tool",
		"notes.txt": "ignored",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.dll"), 0o755))

	b, err := PackDir(context.Background(), dir, 3)
	require.NoError(t, err)

	assert.Equal(t, domain.DomainID(3), b.Domain)
	assert.Equal(t, FormatVersion, b.Format)
	assert.Equal(t, []string{"a.DLL", "b.dll", "tool.exe"}, b.Names())
	assert.Equal(t, [][]byte{[]byte("MZ-a"), []byte("MZ-b"), []byte("MZ-tool")}, b.Images())
}

func TestPackDir_Missing(t *testing.T) {
	_, err := PackDir(context.Background(), filepath.Join(t.TempDir(), "nope"), 1)
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	d := Digest([]byte("MZ"))
	assert.Len(t, d, 64)
	assert.Equal(t, d[:16], ShortDigest([]byte("MZ")))
	assert.NotEqual(t, d, Digest([]byte("MZ!")))
	assert.Equal(t, d, Digest([]byte("MZ")))
}
