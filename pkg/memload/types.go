package memload

import (
	"github.com/bft-labs/memload/internal/domain"
	"github.com/bft-labs/memload/internal/ports"
	"github.com/bft-labs/memload/pkg/log"
)

// Re-export the port and domain types so embedders can implement them.
type (
	// DomainID identifies an execution domain.
	DomainID = domain.DomainID

	// Domain is an execution domain handle.
	Domain = ports.Domain

	// DomainRef is a Domain backed by a bare id.
	DomainRef = ports.DomainRef

	// AssemblyName is the name descriptor handed to Resolve.
	AssemblyName = ports.AssemblyName

	// StaticName is an AssemblyName backed by a string.
	StaticName = ports.StaticName

	// Assembly is an opaque native assembly handle.
	Assembly = ports.Assembly

	// ReflectionAssembly is the managed object returned by the runtime loader.
	ReflectionAssembly = ports.ReflectionAssembly

	// AssemblyLoader is the runtime's load-from-bytes entry point.
	AssemblyLoader = ports.AssemblyLoader

	// Logger is the structured logging interface.
	Logger = log.Logger
)

// Errors returned by the Registry. Check them with errors.Is.
var (
	ErrMismatchedInput = domain.ErrMismatchedInput
	ErrInvalidImage    = domain.ErrInvalidImage
	ErrInvalidBundle   = domain.ErrInvalidBundle
	ErrInvalidConfig   = domain.ErrInvalidConfig
)

// AssemblyInfo describes one registered assembly.
type AssemblyInfo struct {
	Name string
	Size int
}

// Snapshot describes a domain's registration at the time it was taken.
type Snapshot struct {
	Domain     DomainID
	Assemblies []AssemblyInfo
}

// TotalBytes returns the sum of all assembly sizes.
func (s Snapshot) TotalBytes() int {
	var total int
	for _, a := range s.Assemblies {
		total += a.Size
	}
	return total
}
