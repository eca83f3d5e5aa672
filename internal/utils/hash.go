package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers.
// Each hasher in the pool is configured with the provided hash key.
//
// Purpose:
//   - Avoid repeated allocations of new hash.Hash instances on every
//     settings write
//
// Parameters:
//
//	hashKey - key used for all HMAC operations
//
// The server calls it once at start-up when a hash key is configured.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 signature over the given byte slice
// using a hasher pulled from the global hasher pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Parameters:
//
//	data - arbitrary byte slice to be hashed
//
// Returns:
//
//	[]byte - HMAC-SHA256 digest
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

// hmacSHA256 signs data with a fresh HMAC instance, for callers that have
// their own key rather than the pooled one.
func hmacSHA256(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// CanonicalJSON compacts a JSON document so that insignificant whitespace
// doesn't change its hash.
func CanonicalJSON(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("error compacting JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// HashJSON returns the hex-encoded HMAC-SHA256 of the compacted JSON value
// under hashKey. Clients use it to sign settings payloads; the server checks
// the same value with the pooled [Hash].
func HashJSON(raw []byte, hashKey string) (string, error) {
	canonical, err := CanonicalJSON(raw)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(hmacSHA256(canonical, hashKey)), nil
}
