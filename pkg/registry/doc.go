// Package registry provides the domain-scoped entry store that backs memload.
//
// A [Store] holds at most one [domain.BlobSet] per execution domain. Sets are
// inserted or replaced with [Store.Upsert], looked up with [Store.Find] and
// handed back to the caller for disposal with [Store.Remove].
//
// # Concurrency
//
// Store performs no locking. Every call must be serialized by the caller; the
// host integration in pkg/memload does this with a single sync.Locker.
//
// # Growth
//
// The backing array grows by doubling when full. Capacity arithmetic is
// overflow-checked and an overflow panics with [domain.ErrCapacityOverflow],
// the same way the Go runtime treats an allocation it cannot satisfy.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package registry
