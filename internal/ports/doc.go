// Package ports defines the interfaces that connect the memload core to the
// managed runtime it is embedded in.
//
// The core never talks to a runtime binding directly. The resolution pipeline
// hands it a [Domain] and an [AssemblyName]; the core hands images back to the
// runtime through an [AssemblyLoader] and receives a [ReflectionAssembly],
// which it unwraps into the native [Assembly] handle the resolver expects.
//
// # Port Interfaces
//
//   - [Domain]: an execution domain, identified by a numeric id
//   - [AssemblyName]: the name descriptor passed to the resolution hook
//   - [AssemblyLoader]: the runtime's load-from-bytes entry point
//   - [ReflectionAssembly]: the managed object returned by that entry point
//   - [Assembly]: the native assembly handle returned to the resolver
//   - [Logger]: structured logging abstraction
package ports
