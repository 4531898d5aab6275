package ports

import "github.com/bft-labs/memload/internal/domain"

// Domain is an execution domain of the managed runtime.
type Domain interface {
	// ID returns the runtime's numeric id for the domain.
	ID() domain.DomainID
}

// AssemblyName is the name descriptor handed to the resolution hook.
type AssemblyName interface {
	// Name returns the simple assembly name, matched case-sensitively.
	Name() string
}

// Assembly is an opaque native assembly handle owned by the runtime.
type Assembly = any

// ReflectionAssembly is the managed-side object returned by the runtime's
// load-from-bytes entry point.
type ReflectionAssembly interface {
	// Assembly unwraps the managed object into its native handle.
	Assembly() Assembly
}

// AssemblyLoader materializes an assembly from an in-memory image.
//
// image is a buffer sized exactly to the assembly; the loader may keep it.
// Implementations that bind to a reflection-style Load(raw, symbols, evidence)
// entry point pass nil for the last two arguments.
type AssemblyLoader interface {
	LoadFromImage(d Domain, image []byte) (ReflectionAssembly, error)
}

// StaticName is an AssemblyName backed by a plain string.
type StaticName string

// Name returns the string itself.
func (n StaticName) Name() string { return string(n) }

// DomainRef is a Domain backed by a bare id. Hosts that only know the id of a
// domain (for example in teardown notifications) use it.
type DomainRef domain.DomainID

// ID returns the id itself.
func (d DomainRef) ID() domain.DomainID { return domain.DomainID(d) }
