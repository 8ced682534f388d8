package hashid

import (
	"errors"
	"fmt"
	"hash"
)

// Generator produces fingerprints with a fixed, validated configuration.
// It is safe for concurrent use.
type Generator struct {
	method          Method
	newHash         func() hash.Hash
	key             []byte
	hashBytesUsed   int
	timestampPrefix bool
}

// New validates the options and returns a ready Generator.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	newHash := o.method.New()
	if newHash == nil {
		return nil, errors.Join(ErrUnsupportedMethod, fmt.Errorf("method %q", o.method))
	}

	return &Generator{
		method:          o.method,
		newHash:         newHash,
		key:             o.key,
		hashBytesUsed:   o.hashBytesUsed,
		timestampPrefix: o.timestampPrefix,
	}, nil
}

// NewFromConfig builds a Generator from cfg. Extra options are applied after
// the config values and override them.
func NewFromConfig(cfg Config, opts ...Option) (*Generator, error) {
	m, err := ParseMethod(cfg.Method)
	if err != nil {
		return nil, err
	}

	configOpts := make([]Option, 0, 4+len(opts))
	configOpts = append(configOpts,
		WithMethod(m),
		WithKey([]byte(cfg.Key)),
		WithHashBytesUsed(cfg.HashBytesUsed),
		WithTimestampPrefix(cfg.TimestampPrefix),
	)
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

// Method returns the configured hash method.
func (g *Generator) Method() Method { return g.method }

// TimestampPrefix reports whether identifiers carry the epoch prefix.
func (g *Generator) TimestampPrefix() bool { return g.timestampPrefix }

// DigestSize is the number of digest bytes kept after truncation.
func (g *Generator) DigestSize() int {
	size := g.method.Size()
	if g.hashBytesUsed > 0 && g.hashBytesUsed < size {
		return g.hashBytesUsed
	}
	return size
}

// Size is the length of the binary identifier before base64 encoding.
func (g *Generator) Size() int {
	if g.timestampPrefix {
		return PrefixSize + g.DigestSize()
	}
	return g.DigestSize()
}

// Sum returns the (possibly truncated) HMAC over the canonical fields.
func (g *Generator) Sum(fields []string, rec Getter) []byte {
	sum := Digest(g.newHash, g.key, Canonicalize(fields, rec))
	return Truncate(sum, g.hashBytesUsed)
}

// Binary returns the raw identifier: optional epoch prefix followed by the digest.
// epoch is ignored when the prefix is disabled.
func (g *Generator) Binary(fields []string, rec Getter, epoch int64) []byte {
	sum := g.Sum(fields, rec)
	if !g.timestampPrefix {
		return sum
	}
	prefix := PackEpoch(epoch)
	out := make([]byte, 0, PrefixSize+len(sum))
	out = append(out, prefix[:]...)
	return append(out, sum...)
}

// Generate returns the fingerprint string for the given fields of rec.
// epoch is ignored when the prefix is disabled.
func (g *Generator) Generate(fields []string, rec Getter, epoch int64) string {
	sum := g.Sum(fields, rec)
	if !g.timestampPrefix {
		return Encode(nil, sum)
	}
	prefix := PackEpoch(epoch)
	return Encode(prefix[:], sum)
}

// Split decodes an identifier produced by this generator into its prefix and
// digest parts. The prefix is nil when the timestamp prefix is disabled.
// Only the encoding and length are checked; the digest is not verified.
func (g *Generator) Split(id string) (prefix, digest []byte, err error) {
	raw, err := Decode(id)
	if err != nil {
		return nil, nil, errors.Join(ErrMalformedID, err)
	}
	if len(raw) != g.Size() {
		return nil, nil, errors.Join(ErrMalformedID, fmt.Errorf("length %d, want %d", len(raw), g.Size()))
	}
	if !g.timestampPrefix {
		return nil, raw, nil
	}
	return raw[:PrefixSize], raw[PrefixSize:], nil
}
