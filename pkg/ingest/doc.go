// Package ingest turns a bulk transfer from the host into a domain blob set.
//
// A bulk transfer is a domain id plus two parallel sequences: assembly names
// and raw images. The images may live in memory the host reclaims as soon as
// the call returns, so [Adapter.Ingest] copies every name and image into
// storage owned by the resulting [domain.BlobSet].
//
// # Compressed payloads
//
// Images may carry the XALZ header used by Android application packages for
// LZ4-compressed assemblies. With [WithDecompression] enabled such images are
// decompressed during the copy; [CompressXALZ] produces them.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package ingest
