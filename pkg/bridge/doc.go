// Package bridge resolves assembly requests against registered images.
//
// [Bridge.Load] is invoked from the runtime's assembly-resolution pipeline as
// one loading strategy among several. A request for a domain without a
// registration, or for a name the domain did not register, is reported as not
// found so the pipeline moves on to its filesystem strategies.
//
// On a match the image is copied into a buffer sized exactly to the entry and
// handed to the runtime through ports.AssemblyLoader. The copy is taken while
// holding the bridge's lock; the loader is called after the lock is released,
// so a runtime that resolves dependencies of the assembly being loaded can
// re-enter Load.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package bridge
