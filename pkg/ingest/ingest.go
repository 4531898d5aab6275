package ingest

import (
	"fmt"
	"strings"

	"github.com/bft-labs/memload/internal/domain"
	"github.com/bft-labs/memload/internal/ports"
	"github.com/bft-labs/memload/pkg/log"
)

// Option configures an Adapter.
type Option func(*Adapter)

// WithDecompression enables decoding of XALZ-compressed images.
func WithDecompression(enabled bool) Option {
	return func(a *Adapter) {
		a.decompress = enabled
	}
}

// WithLogger sets the logger used for per-image diagnostics.
func WithLogger(logger ports.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Adapter converts bulk transfers into blob sets. It holds no per-call state
// and may be shared.
type Adapter struct {
	decompress bool
	logger     ports.Logger
}

// New creates an Adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ingest builds the blob set for domain id from parallel names and images.
//
// When images is empty there is nothing to register and Ingest returns a nil
// set and a nil error; callers skip registration in that case. Differing
// lengths are rejected with domain.ErrMismatchedInput. Entries keep input
// order and duplicate names are kept as given.
func (a *Adapter) Ingest(id domain.DomainID, names []string, images [][]byte) (*domain.BlobSet, error) {
	if len(images) == 0 {
		return nil, nil
	}
	if len(names) != len(images) {
		return nil, fmt.Errorf("%w: %d names, %d images", domain.ErrMismatchedInput, len(names), len(images))
	}

	entries := make([]domain.Entry, len(images))
	for i, raw := range images {
		image, err := a.ownImage(raw)
		if err != nil {
			return nil, fmt.Errorf("ingest %q: %w", names[i], err)
		}
		entries[i] = domain.Entry{
			Name:  strings.Clone(names[i]),
			Image: image,
		}
		if len(image) != len(raw) {
			a.logger.Debug("decompressed assembly image",
				ports.DomainField(id),
				ports.String("name", names[i]),
				ports.Bytes("compressed_bytes", len(raw)),
				ports.Bytes("bytes", len(image)))
		}
	}

	return domain.NewBlobSet(id, entries), nil
}

// ownImage returns a copy of raw that shares no memory with it.
func (a *Adapter) ownImage(raw []byte) ([]byte, error) {
	if a.decompress && IsXALZ(raw) {
		return DecompressXALZ(raw)
	}
	image := make([]byte, len(raw))
	copy(image, raw)
	return image, nil
}
