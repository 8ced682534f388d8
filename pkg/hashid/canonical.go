package hashid

import (
	"bytes"
	"slices"
)

// Getter resolves a field name to its string representation.
// The boolean is false when the field is absent.
type Getter interface {
	Get(name string) (string, bool)
}

// Record is a plain string map implementing Getter.
type Record map[string]string

// Get returns the value stored under name.
func (r Record) Get(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// Canonicalize renders the named fields of rec as a sequence of |name|value
// blocks ordered by byte-wise comparison of the names. The caller's slice is
// not modified and duplicates are kept. Absent fields render as empty values.
func Canonicalize(fields []string, rec Getter) []byte {
	sorted := slices.Clone(fields)
	slices.Sort(sorted)

	values := make([]string, len(sorted))
	size := 0
	for i, name := range sorted {
		if rec != nil {
			values[i], _ = rec.Get(name)
		}
		size += len(name) + len(values[i]) + 2
	}

	var buf bytes.Buffer
	buf.Grow(size)
	for i, name := range sorted {
		buf.WriteByte('|')
		buf.WriteString(name)
		buf.WriteByte('|')
		buf.WriteString(values[i])
	}
	return buf.Bytes()
}
