// Package bundle stores a domain's bulk transfer in a file.
//
// A bundle carries what the host would otherwise hand over in memory: the
// target domain id and an ordered list of (name, image) pairs. It is encoded as
// deterministic CBOR and may be framed with zstd; [Decode] detects the framing.
//
// # Usage
//
//	b, err := bundle.PackDir(ctx, "/path/to/assemblies", 1)
//	if err != nil {
//	    return err
//	}
//	if err := bundle.WriteFile("app.bundle", b, bundle.CompressionZstd); err != nil {
//	    return err
//	}
//
//	b, err = bundle.ReadFile("app.bundle")
//	err = registry.Register(b.Domain, b.Names(), b.Images())
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package bundle
