package driver

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is a SHA-256 content hash used as the disk cache key.
type Digest [sha256.Size]byte

// HashContent digests raw file content. The hash is taken over the bytes as
// read from disk, before any CRLF or BOM normalization, so the key changes
// whenever the on-disk representation does.
func HashContent(content []byte) Digest {
	return Digest(sha256.Sum256(content))
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether the digest was never computed.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}
