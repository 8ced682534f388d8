package hashid_test

import (
	"bytes"
	"encoding/base64"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hashid/pkg/hashid"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	t.Run("sorts names and renders blocks", func(t *testing.T) {
		t.Parallel()
		rec := hashid.Record{"b": "2", "a": "1"}
		assert.Equal(t, "|a|1|b|2", string(hashid.Canonicalize([]string{"b", "a"}, rec)))
	})

	t.Run("sorts byte-wise", func(t *testing.T) {
		t.Parallel()
		rec := hashid.Record{"B": "upper", "a": "lower", "@timestamp": "ts"}
		assert.Equal(t, "|@timestamp|ts|B|upper|a|lower",
			string(hashid.Canonicalize([]string{"a", "B", "@timestamp"}, rec)))
	})

	t.Run("does not modify caller slice", func(t *testing.T) {
		t.Parallel()
		fields := []string{"z", "y", "x"}
		hashid.Canonicalize(fields, hashid.Record{})
		assert.Equal(t, []string{"z", "y", "x"}, fields)
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		t.Parallel()
		rec := hashid.Record{"a": "1"}
		assert.Equal(t, "|a|1|a|1", string(hashid.Canonicalize([]string{"a", "a"}, rec)))
	})

	t.Run("missing field is empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "|a|", string(hashid.Canonicalize([]string{"a"}, hashid.Record{})))
	})

	t.Run("no fields yields empty message", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, hashid.Canonicalize(nil, hashid.Record{"a": "1"}))
	})

	t.Run("values are not escaped", func(t *testing.T) {
		t.Parallel()
		// Known ambiguity: one field holding "|b|2" equals two real fields.
		one := hashid.Canonicalize([]string{"a"}, hashid.Record{"a": "1|b|2"})
		two := hashid.Canonicalize([]string{"a", "b"}, hashid.Record{"a": "1", "b": "2"})
		assert.Equal(t, two, one)
	})

	t.Run("utf-8 bytes pass through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []byte("|msg|héllo 世界"), hashid.Canonicalize([]string{"msg"}, hashid.Record{"msg": "héllo 世界"}))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	sum := []byte{1, 2, 3, 4, 5}
	assert.Equal(t, []byte{4, 5}, hashid.Truncate(sum, 2))
	assert.Equal(t, []byte{2, 3, 4, 5}, hashid.Truncate(sum, 4))
	assert.Equal(t, sum, hashid.Truncate(sum, 0))
	assert.Equal(t, sum, hashid.Truncate(sum, -3))
	assert.Equal(t, sum, hashid.Truncate(sum, 5))
	assert.Equal(t, sum, hashid.Truncate(sum, 64))
}

func TestPackEpoch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		epoch int64
		want  [4]byte
	}{
		{"zero", 0, [4]byte{0, 0, 0, 0}},
		{"fixture", 1451613600, [4]byte{0x56, 0x85, 0xdd, 0xa0}},
		{"max uint32", math.MaxUint32, [4]byte{0xff, 0xff, 0xff, 0xff}},
		{"wraps above 32 bits", 1<<32 + 1, [4]byte{0, 0, 0, 1}},
		{"minus one", -1, [4]byte{0xff, 0xff, 0xff, 0xff}},
		{"negative", -256, [4]byte{0xff, 0xff, 0xff, 0x00}},
		{"min int64", math.MinInt64, [4]byte{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, hashid.PackEpoch(tt.epoch))
		})
	}

	assert.Equal(t, uint32(1451613600), hashid.UnpackEpoch(hashid.PackEpoch(1451613600)))
}

func TestEncode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", hashid.Encode(nil, nil))
	assert.Equal(t, "AQ", hashid.Encode([]byte{1}, nil))
	assert.Equal(t, "AQI", hashid.Encode([]byte{1}, []byte{2}))
	assert.Equal(t, "AQID", hashid.Encode(nil, []byte{1, 2, 3}))
	assert.Equal(t, "+/8", hashid.Encode([]byte{0xfb}, []byte{0xff}))

	raw := bytes.Repeat([]byte{0xab}, 100)
	out := hashid.Encode(raw[:4], raw[4:])
	assert.NotContains(t, out, "=")
	assert.NotContains(t, out, "\n")
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw)[:len(out)], out)

	decoded, err := hashid.Decode(out)
	assert.NoError(t, err)
	assert.Equal(t, raw, decoded)
}
