package hashid

import "encoding/base64"

// Encode renders prefix followed by digest as standard base64 without padding.
func Encode(prefix, digest []byte) string {
	buf := make([]byte, 0, len(prefix)+len(digest))
	buf = append(buf, prefix...)
	buf = append(buf, digest...)
	return base64.RawStdEncoding.EncodeToString(buf)
}

// Decode reverses Encode, returning the raw identifier bytes.
func Decode(id string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(id)
}
