// Package log provides a logging abstraction for memload components.
//
// The registry, the ingestion adapter and the host integration log through the
// Logger interface declared here, so embedders can route messages into
// whatever logging stack their runtime host already uses. A zerolog adapter and
// a no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("registered", log.Domain(7), log.Int("assemblies", 2))
//
// Tests and embedders that do not want output use the no-op logger:
//
//	logger := log.NewNoopLogger()
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log
