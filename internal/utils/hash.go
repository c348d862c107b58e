package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable SHA-256 hashers.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash computes the SHA-256 digest of data using a pooled hasher.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString returns the hex-encoded SHA-256 digest of data. It is used to
// build content-addressed cache keys for image URLs.
//
// Example usage:
//
//	key := "inference:" + utils.HashString(imageURL)
func HashString(data string) string {
	return hex.EncodeToString(Hash([]byte(data)))
}
