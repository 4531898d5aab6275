package memload

import (
	"fmt"
	"sync"

	"github.com/bft-labs/memload/internal/adapters/reflectload"
	"github.com/bft-labs/memload/internal/ports"
	"github.com/bft-labs/memload/pkg/bridge"
	"github.com/bft-labs/memload/pkg/bundle"
	"github.com/bft-labs/memload/pkg/ingest"
	"github.com/bft-labs/memload/pkg/log"
	"github.com/bft-labs/memload/pkg/registry"
)

// Registry routes in-memory assembly loads to the requesting domain's images.
// It is safe for concurrent use.
type Registry struct {
	store  *registry.Store
	ingest *ingest.Adapter
	bridge *bridge.Bridge
	lock   sync.Locker
	logger ports.Logger
	events EventHandler
}

// New creates a Registry that materializes assemblies through loader.
func New(loader AssemblyLoader, opts ...Option) (*Registry, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: nil assembly loader", ErrInvalidConfig)
	}
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.locker == nil {
		o.locker = &sync.Mutex{}
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}

	store := registry.NewStore(o.initialCapacity)
	return &Registry{
		store:  store,
		ingest: ingest.New(ingest.WithDecompression(o.decompress), ingest.WithLogger(o.logger)),
		bridge: bridge.New(store, loader, o.locker),
		lock:   o.locker,
		logger: o.logger,
		events: o.eventHandler,
	}, nil
}

// NewReflective creates a Registry whose loader invokes facility's
// three-argument Load([]byte, symbols, evidence) method by reflection.
func NewReflective(facility any, opts ...Option) (*Registry, error) {
	loader, err := reflectload.New(facility)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return New(loader, opts...)
}

// Register stores images as domain id's assemblies, replacing any earlier
// registration of id. names and images are parallel; both are copied, so the
// caller may reuse its buffers once Register returns.
//
// An empty images slice means the host has nothing for this domain: Register
// does nothing and returns nil.
func (r *Registry) Register(id DomainID, names []string, images [][]byte) error {
	// Ingest before locking: the set is not visible until Upsert.
	set, err := r.ingest.Ingest(id, names, images)
	if err != nil {
		r.logger.Error("registration rejected", ports.DomainField(id), ports.Err(err))
		return err
	}
	if set == nil {
		r.logger.Debug("no assemblies supplied, skipping registration", ports.DomainField(id))
		return nil
	}

	event := RegisterEvent{
		Domain:     id,
		Assemblies: set.Len(),
		Bytes:      set.TotalBytes(),
	}

	r.lock.Lock()
	event.Replaced = r.store.Upsert(set)
	r.lock.Unlock()

	r.logger.Info("registered in-memory assemblies",
		ports.DomainField(id),
		ports.Int("assemblies", event.Assemblies),
		ports.Bytes("bytes", event.Bytes),
		ports.Bool("replaced", event.Replaced))
	r.events.OnRegister(event)
	return nil
}

// RegisterBundle registers the contents of a decoded bundle.
func (r *Registry) RegisterBundle(b *bundle.Bundle) error {
	return r.Register(b.Domain, b.Names(), b.Images())
}

// Resolve is the assembly-resolution hook. found is false when the domain has
// no in-memory assembly of that name; the caller then falls back to its other
// loading strategies.
func (r *Registry) Resolve(d Domain, name AssemblyName) (asm Assembly, found bool, err error) {
	requested := name.Name()
	asm, found, err = r.bridge.Load(d, requested)

	switch {
	case err != nil:
		r.logger.Error("in-memory assembly load failed",
			ports.DomainField(d.ID()), ports.String("name", requested), ports.Err(err))
	case found:
		r.logger.Debug("resolved in-memory assembly",
			ports.DomainField(d.ID()), ports.String("name", requested))
	}

	r.events.OnResolve(ResolveEvent{Domain: d.ID(), Name: requested, Found: found, Err: err})
	return asm, found, err
}

// Release is the domain-teardown hook. It drops domain id's registration and
// reports whether there was one; releasing an unknown or already released
// domain does nothing.
func (r *Registry) Release(id DomainID) bool {
	r.lock.Lock()
	set, ok := r.store.Remove(id)
	r.lock.Unlock()

	if !ok {
		return false
	}

	event := ReleaseEvent{
		Domain:     id,
		Assemblies: set.Len(),
		Bytes:      set.TotalBytes(),
	}
	set.Release()

	r.logger.Info("released in-memory assemblies",
		ports.DomainField(id),
		ports.Int("assemblies", event.Assemblies),
		ports.Bytes("bytes", event.Bytes))
	r.events.OnRelease(event)
	return true
}

// Domains returns the ids of all registered domains in registration order.
func (r *Registry) Domains() []DomainID {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.store.Domains()
}

// Lookup describes domain id's registration.
func (r *Registry) Lookup(id DomainID) (Snapshot, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()

	set, ok := r.store.Find(id)
	if !ok {
		return Snapshot{}, false
	}
	snap := Snapshot{
		Domain:     id,
		Assemblies: make([]AssemblyInfo, set.Len()),
	}
	for i := 0; i < set.Len(); i++ {
		e := set.Entry(i)
		snap.Assemblies[i] = AssemblyInfo{Name: e.Name, Size: e.Len()}
	}
	return snap, true
}
