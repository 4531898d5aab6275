package bridge

import (
	"fmt"
	"sync"

	"github.com/bft-labs/memload/internal/domain"
	"github.com/bft-labs/memload/internal/ports"
	"github.com/bft-labs/memload/pkg/registry"
)

// Bridge looks up images in a store and materializes them through the runtime.
type Bridge struct {
	store  *registry.Store
	loader ports.AssemblyLoader
	lock   sync.Locker
}

// New creates a Bridge. lock must be the same locker that serializes every
// other access to store; pass nil only when the caller already serializes
// calls to Load.
func New(store *registry.Store, loader ports.AssemblyLoader, lock sync.Locker) *Bridge {
	if lock == nil {
		lock = noLock{}
	}
	return &Bridge{
		store:  store,
		loader: loader,
		lock:   lock,
	}
}

// Load resolves requested in domain d.
//
// It returns (nil, false, nil) when the domain has no registration or the
// registration has no entry named requested (exact, case-sensitive, first
// match wins). A failure inside the runtime loader is returned as an error.
func (b *Bridge) Load(d ports.Domain, requested string) (ports.Assembly, bool, error) {
	image, ok := b.copyImage(d.ID(), requested)
	if !ok {
		return nil, false, nil
	}

	refl, err := b.loader.LoadFromImage(d, image)
	if err != nil {
		return nil, false, fmt.Errorf("load %q in domain %d: %w", requested, d.ID(), err)
	}
	return refl.Assembly(), true, nil
}

// Contains reports whether domain id has an entry named name.
func (b *Bridge) Contains(id domain.DomainID, name string) bool {
	b.lock.Lock()
	defer b.lock.Unlock()

	set, ok := b.store.Find(id)
	if !ok {
		return false
	}
	_, ok = set.Find(name)
	return ok
}

// copyImage returns a private copy of the matching entry's image.
func (b *Bridge) copyImage(id domain.DomainID, name string) ([]byte, bool) {
	b.lock.Lock()
	defer b.lock.Unlock()

	set, ok := b.store.Find(id)
	if !ok {
		return nil, false
	}
	entry, ok := set.Find(name)
	if !ok {
		return nil, false
	}

	image := make([]byte, entry.Len())
	copy(image, entry.Image)
	return image, true
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}
