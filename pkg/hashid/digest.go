package hashid

import (
	"crypto/hmac"
	"hash"
)

// Digest computes the HMAC of msg with key using the given hash constructor.
func Digest(newHash func() hash.Hash, key, msg []byte) []byte {
	mac := hmac.New(newHash, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// Truncate keeps the last n bytes of sum. When n is not positive or not
// smaller than len(sum) the digest is returned unchanged.
func Truncate(sum []byte, n int) []byte {
	if n <= 0 || n >= len(sum) {
		return sum
	}
	return sum[len(sum)-n:]
}
