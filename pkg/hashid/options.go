package hashid

const defaultKey = "hashid"

type options struct {
	method          Method
	key             []byte
	hashBytesUsed   int
	timestampPrefix bool
}

func defaultOptions() *options {
	return &options{
		method:          MD5,
		key:             []byte(defaultKey),
		timestampPrefix: true,
	}
}

// Option configures a Generator.
type Option func(*options)

// WithMethod selects the hash function. Unsupported values make New fail.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithKey sets the HMAC secret. The slice is copied.
func WithKey(key []byte) Option {
	return func(o *options) { o.key = append([]byte(nil), key...) }
}

// WithHashBytesUsed keeps only the last n bytes of the digest.
// Zero, negative or oversized values keep the full digest.
func WithHashBytesUsed(n int) Option {
	return func(o *options) { o.hashBytesUsed = n }
}

// WithTimestampPrefix toggles the 4-byte epoch prefix.
func WithTimestampPrefix(enabled bool) Option {
	return func(o *options) { o.timestampPrefix = enabled }
}
