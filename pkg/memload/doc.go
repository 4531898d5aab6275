// Package memload lets a managed runtime load assemblies from memory.
//
// A [Registry] keeps, per execution domain, the assembly images a host handed
// over, and plugs into the runtime at three points:
//
//   - [Registry.Register] receives a bulk transfer (domain id, names, images)
//     from the host bridge.
//   - [Registry.Resolve] is installed as a strategy in the runtime's
//     assembly-resolution pipeline. A miss returns found == false and the
//     pipeline continues with its filesystem strategies.
//   - [Registry.Release] is installed as the domain-unload notification and
//     drops the domain's images.
//
// # Basic Usage
//
//	reg, err := memload.NewReflective(runtimeAssemblyFacility,
//	    memload.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//
//	if err := reg.Register(domainID, names, images); err != nil {
//	    return err
//	}
//
//	asm, found, err := reg.Resolve(domain, assemblyName)
//
//	reg.Release(domainID)
//
// # Concurrency
//
// All store access is serialized by one sync.Locker, a *sync.Mutex unless
// [WithLocker] supplies another (for example the runtime's own domain lock).
// The runtime loader is called without the lock held, so it may resolve
// dependencies through Resolve while loading.
//
// # Events
//
// Implement [EventHandler] (embedding [BaseEventHandler] for no-op defaults)
// and pass it via [WithEventHandler]. Events are called synchronously after
// the lock is released.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package memload
