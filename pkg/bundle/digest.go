package bundle

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest returns the hex BLAKE3-256 digest of an image. It identifies images
// in logs and inspect output; nothing verifies images against it.
func Digest(image []byte) string {
	sum := blake3.Sum256(image)
	return hex.EncodeToString(sum[:])
}

// ShortDigest returns the first 16 hex characters of Digest.
func ShortDigest(image []byte) string {
	return Digest(image)[:16]
}
