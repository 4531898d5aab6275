package memload_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/memload"
	"github.com/bft-labs/memload/internal/adapters/peimage"
	"github.com/bft-labs/memload/pkg/bundle"
	pkgmemload "github.com/bft-labs/memload/pkg/memload"
)

func TestLoadBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.mlb")
	b := bundle.New(5)
	b.Add("App.dll", []byte("MZ-app"))
	require.NoError(t, bundle.WriteFile(path, b, bundle.CompressionZstd))

	reg, err := memload.NewRegistry(peimage.NewFacility())
	require.NoError(t, err)
	require.NoError(t, memload.LoadBundle(reg, path))

	asm, found, err := reg.Resolve(pkgmemload.DomainRef(5), pkgmemload.StaticName("App.dll"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 6, asm.(*peimage.Assembly).Size)
}

func TestLoadBundle_Missing(t *testing.T) {
	reg, err := memload.NewRegistry(peimage.NewFacility())
	require.NoError(t, err)
	assert.Error(t, memload.LoadBundle(reg, filepath.Join(t.TempDir(), "absent.mlb")))
	assert.Empty(t, reg.Domains())
}
