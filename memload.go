// Package memload lets a managed runtime load assemblies from in-memory images
// handed over by its host, scoped per execution domain.
//
// Example usage:
//
//	reg, err := memload.NewRegistry(assemblyFacility)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := reg.Register(domainID, names, images); err != nil {
//	    log.Fatal(err)
//	}
//	asm, found, err := reg.Resolve(domain, name)
//	reg.Release(domainID)
//
// See pkg/memload for the full API.
package memload

import (
	"github.com/bft-labs/memload/pkg/bundle"
	"github.com/bft-labs/memload/pkg/memload"
)

// Registry routes in-memory assembly loads to the requesting domain's images.
type Registry = memload.Registry

// Option configures a Registry.
type Option = memload.Option

// DomainID identifies an execution domain.
type DomainID = memload.DomainID

// NewRegistry creates a Registry bound to facility's three-argument
// Load([]byte, symbols, evidence) method.
func NewRegistry(facility any, opts ...Option) (*Registry, error) {
	return memload.NewReflective(facility, opts...)
}

// LoadBundle reads a bundle file and registers its contents with reg.
func LoadBundle(reg *Registry, path string) error {
	b, err := bundle.ReadFile(path)
	if err != nil {
		return err
	}
	return reg.RegisterBundle(b)
}
