package bundle

import (
	"fmt"

	"github.com/bft-labs/memload/internal/domain"
)

// FormatVersion is the bundle layout version written by this package.
const FormatVersion = 1

// Bundle is one domain's bulk transfer.
type Bundle struct {
	Format     int             `cbor:"format"`
	Domain     domain.DomainID `cbor:"domain"`
	Assemblies []Assembly      `cbor:"assemblies"`
}

// Assembly is a named image inside a bundle.
type Assembly struct {
	Name  string `cbor:"name"`
	Image []byte `cbor:"image"`
}

// New creates a bundle for domain id.
func New(id domain.DomainID, assemblies ...Assembly) *Bundle {
	return &Bundle{
		Format:     FormatVersion,
		Domain:     id,
		Assemblies: assemblies,
	}
}

// Add appends an assembly.
func (b *Bundle) Add(name string, image []byte) {
	b.Assemblies = append(b.Assemblies, Assembly{Name: name, Image: image})
}

// Names returns the assembly names in bundle order.
func (b *Bundle) Names() []string {
	names := make([]string, len(b.Assemblies))
	for i, a := range b.Assemblies {
		names[i] = a.Name
	}
	return names
}

// Images returns the assembly images in bundle order. The images are shared
// with the bundle.
func (b *Bundle) Images() [][]byte {
	images := make([][]byte, len(b.Assemblies))
	for i, a := range b.Assemblies {
		images[i] = a.Image
	}
	return images
}

// TotalBytes returns the sum of all image lengths.
func (b *Bundle) TotalBytes() int {
	var total int
	for _, a := range b.Assemblies {
		total += len(a.Image)
	}
	return total
}

// Validate checks the bundle layout version and that every assembly is named.
func (b *Bundle) Validate() error {
	if b.Format != FormatVersion {
		return fmt.Errorf("%w: unsupported format %d", domain.ErrInvalidBundle, b.Format)
	}
	for i, a := range b.Assemblies {
		if a.Name == "" {
			return fmt.Errorf("%w: assembly %d has no name", domain.ErrInvalidBundle, i)
		}
	}
	return nil
}
