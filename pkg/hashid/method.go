package hashid

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Method names the hash function used inside the HMAC.
type Method string

const (
	MD5    Method = "MD5"
	SHA1   Method = "SHA1"
	SHA256 Method = "SHA256"
	SHA384 Method = "SHA384"
	SHA512 Method = "SHA512"
)

// Methods lists every supported method.
var Methods = []Method{MD5, SHA1, SHA256, SHA384, SHA512}

// ParseMethod resolves a method name, ignoring case and surrounding whitespace.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(name)))
	if !m.Valid() {
		return "", errors.Join(ErrUnsupportedMethod, fmt.Errorf("method %q", name))
	}
	return m, nil
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	return m.hasher() != nil
}

// New returns the hash constructor for m, or nil for an unsupported method.
func (m Method) New() func() hash.Hash {
	return m.hasher()
}

// Size is the natural digest length in bytes, or 0 for an unsupported method.
func (m Method) Size() int {
	switch m {
	case MD5:
		return md5.Size
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	case SHA384:
		return sha512.Size384
	case SHA512:
		return sha512.Size
	}
	return 0
}

func (m Method) String() string {
	return string(m)
}

func (m Method) hasher() func() hash.Hash {
	switch m {
	case MD5:
		return md5.New
	case SHA1:
		return sha1.New
	case SHA256:
		return sha256.New
	case SHA384:
		return sha512.New384
	case SHA512:
		return sha512.New
	}
	return nil
}
