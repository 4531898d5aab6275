// Package domain contains the core entities and value objects for memload.
//
// This package is the innermost layer of the code base. It has no dependencies
// on infrastructure concerns (runtime bindings, file system, logging) and holds
// only the ownership rules for in-memory assembly images.
//
// # Entities
//
//   - [Entry]: a named assembly image owned by a registration
//   - [BlobSet]: the immutable set of entries registered for one execution domain
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction
//   - Free of infrastructure dependencies
//   - Owners of their byte buffers (never aliases of host memory)
package domain
