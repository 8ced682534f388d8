package hashid

import "errors"

var (
	// ErrUnsupportedMethod is returned at setup time when the hash method name
	// is not one of MD5, SHA1, SHA256, SHA384 or SHA512.
	ErrUnsupportedMethod = errors.New("hashid: unsupported hash method")

	// ErrMalformedID is returned by Generator.Split for strings that are not
	// base64 or whose decoded length does not match the generator's Size.
	ErrMalformedID = errors.New("hashid: malformed identifier")
)
