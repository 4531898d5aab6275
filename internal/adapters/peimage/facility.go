// Package peimage is a stand-in for the managed runtime's assembly facility.
//
// It exposes the same three-argument Load(raw, symbols, evidence) shape as the
// runtime's reflection entry point, so the CLI and tests can drive the whole
// resolution path through reflectload without an embedded runtime. Loading only
// checks the PE "MZ" signature and records what was loaded.
package peimage

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/bft-labs/memload/internal/domain"
	"github.com/bft-labs/memload/internal/ports"
	"github.com/bft-labs/memload/pkg/bundle"
)

var dosSignature = []byte("MZ")

// Evidence stands in for the runtime's security evidence parameter.
type Evidence struct{}

// Assembly is the native handle produced by Facility.
type Assembly struct {
	// Seq numbers loads in the order the facility performed them, from 1.
	Seq int

	// Size is the image length in bytes.
	Size int

	// Digest is the BLAKE3 digest of the image.
	Digest string

	// Image is the buffer the facility was handed.
	Image []byte
}

// ReflectionAssembly is the managed-side object wrapping an Assembly.
type ReflectionAssembly struct {
	native *Assembly
}

// Assembly returns the native handle.
func (r *ReflectionAssembly) Assembly() ports.Assembly {
	return r.native
}

// Facility loads images. It is safe for concurrent use.
type Facility struct {
	mu     sync.Mutex
	loaded []*Assembly
}

// NewFacility creates an empty facility.
func NewFacility() *Facility {
	return &Facility{}
}

// Load materializes raw. symbols and evidence are accepted for shape
// compatibility and must be nil.
func (f *Facility) Load(raw []byte, symbols []byte, evidence *Evidence) (*ReflectionAssembly, error) {
	if symbols != nil || evidence != nil {
		return nil, fmt.Errorf("peimage: symbols and evidence are not supported")
	}
	if !bytes.HasPrefix(raw, dosSignature) {
		return nil, fmt.Errorf("%w: missing MZ signature", domain.ErrInvalidImage)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	asm := &Assembly{
		Seq:    len(f.loaded) + 1,
		Size:   len(raw),
		Digest: bundle.Digest(raw),
		Image:  raw,
	}
	f.loaded = append(f.loaded, asm)
	return &ReflectionAssembly{native: asm}, nil
}

// Loaded returns every assembly loaded so far, in load order.
func (f *Facility) Loaded() []*Assembly {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Assembly(nil), f.loaded...)
}
