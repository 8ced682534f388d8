package hashid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hashid/pkg/hashid"
)

const fixtureEpoch int64 = 1451613600

func TestGenerate_Fixtures(t *testing.T) {
	t.Parallel()

	message := hashid.Record{"message": "testmessage"}

	tests := []struct {
		name      string
		method    hashid.Method
		hashBytes int
		prefix    bool
		fields    []string
		record    hashid.Record
		want      string
	}{
		{"full MD5", hashid.MD5, 0, false, []string{"message"}, message, "Q1nsJNndnZbJCUdpESyaQw"},
		{"12 byte MD5", hashid.MD5, 12, false, []string{"message"}, message, "2d2dlskJR2kRLJpD"},
		{"full SHA1", hashid.SHA1, 0, false, []string{"message"}, message, "4Z0cdm66w+ybeEmJ2FNJQk+Ozo8"},
		{"12 byte SHA1", hashid.SHA1, 12, false, []string{"message"}, message, "m3hJidhTSUJPjs6P"},
		{"full SHA256", hashid.SHA256, 0, false, []string{"message"}, message, "fkJYY49AW4WvgIdHPxVV+XRli7DIFibPlAzc7AfYsyE"},
		{"12 byte SHA256", hashid.SHA256, 12, false, []string{"message"}, message, "yBYmz5QM3OwH2LMh"},
		{"full SHA384", hashid.SHA384, 0, false, []string{"message"}, message, "67pMQGQreLAz4lZ6HbheeV4yZNSJeIvHHKC53EYIO5kxLqOd7m8threLV88U2KoD"},
		{"12 byte SHA384", hashid.SHA384, 12, false, []string{"message"}, message, "7m8threLV88U2KoD"},
		{"full SHA512", hashid.SHA512, 0, false, []string{"message"}, message, "ZOf6aUmqa8U61Yh1Cq9pkUhc3/CmWLe53OB+/Z3gMoqKtfwt5hDHHNFpvvw1Fw2WgfKW5xatBTq3yZsU1U9Kgg"},
		{"12 byte SHA512", hashid.SHA512, 12, false, []string{"message"}, message, "Fq0FOrfJmxTVT0qC"},
		{"full MD5 with prefix", hashid.MD5, 0, true, []string{"message"}, message, "VoXdoENZ7CTZ3Z2WyQlHaREsmkM"},
		{"12 byte MD5 with prefix", hashid.MD5, 12, true, []string{"message"}, message, "VoXdoNndnZbJCUdpESyaQw"},
		{
			"concatenated source",
			hashid.MD5, 0, true,
			[]string{"part1", "part2"},
			hashid.Record{"part1": "test", "part2": "message"},
			"VoXdoAJye/IGBcaITA1N6mqFfH0",
		},
		{
			"concatenated source reversed",
			hashid.MD5, 0, true,
			[]string{"part2", "part1"},
			hashid.Record{"part2": "message", "part1": "test"},
			"VoXdoAJye/IGBcaITA1N6mqFfH0",
		},
		{
			"timestamp as source field",
			hashid.MD5, 0, true,
			[]string{"@timestamp", "message"},
			hashid.Record{"@timestamp": "2016-01-01T02:00:00.000Z", "message": "testmessage"},
			"VoXdoHTcOT2UXfHgYC9BeV5DrT0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gen, err := hashid.New(
				hashid.WithMethod(tt.method),
				hashid.WithKey([]byte("hashid")),
				hashid.WithHashBytesUsed(tt.hashBytes),
				hashid.WithTimestampPrefix(tt.prefix),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.want, gen.Generate(tt.fields, tt.record, fixtureEpoch))
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults match the historical filter", func(t *testing.T) {
		t.Parallel()
		gen, err := hashid.New()
		require.NoError(t, err)
		assert.Equal(t, hashid.MD5, gen.Method())
		assert.True(t, gen.TimestampPrefix())
		assert.Equal(t, "VoXdoENZ7CTZ3Z2WyQlHaREsmkM",
			gen.Generate([]string{"message"}, hashid.Record{"message": "testmessage"}, fixtureEpoch))
	})

	t.Run("rejects unsupported method", func(t *testing.T) {
		t.Parallel()
		gen, err := hashid.New(hashid.WithMethod("CRC32"))
		require.Error(t, err)
		assert.ErrorIs(t, err, hashid.ErrUnsupportedMethod)
		assert.Nil(t, gen)
	})

	t.Run("negative hash bytes keep full digest", func(t *testing.T) {
		t.Parallel()
		gen, err := hashid.New(hashid.WithHashBytesUsed(-1), hashid.WithTimestampPrefix(false))
		require.NoError(t, err)
		assert.Equal(t, "Q1nsJNndnZbJCUdpESyaQw",
			gen.Generate([]string{"message"}, hashid.Record{"message": "testmessage"}, 0))
	})

	t.Run("key is copied", func(t *testing.T) {
		t.Parallel()
		key := []byte("hashid")
		gen, err := hashid.New(hashid.WithKey(key), hashid.WithTimestampPrefix(false))
		require.NoError(t, err)
		key[0] = 'X'
		assert.Equal(t, "Q1nsJNndnZbJCUdpESyaQw",
			gen.Generate([]string{"message"}, hashid.Record{"message": "testmessage"}, 0))
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses method case-insensitively", func(t *testing.T) {
		t.Parallel()
		gen, err := hashid.NewFromConfig(hashid.Config{Method: " sha1 ", Key: "hashid", HashBytesUsed: 12})
		require.NoError(t, err)
		assert.Equal(t, hashid.SHA1, gen.Method())
		assert.False(t, gen.TimestampPrefix())
		assert.Equal(t, "m3hJidhTSUJPjs6P",
			gen.Generate([]string{"message"}, hashid.Record{"message": "testmessage"}, 0))
	})

	t.Run("default config", func(t *testing.T) {
		t.Parallel()
		gen, err := hashid.NewFromConfig(hashid.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, hashid.MD5, gen.Method())
		assert.True(t, gen.TimestampPrefix())
	})

	t.Run("unknown method fails at setup", func(t *testing.T) {
		t.Parallel()
		_, err := hashid.NewFromConfig(hashid.Config{Method: "whirlpool"})
		assert.ErrorIs(t, err, hashid.ErrUnsupportedMethod)
	})

	t.Run("options override config", func(t *testing.T) {
		t.Parallel()
		gen, err := hashid.NewFromConfig(hashid.DefaultConfig(), hashid.WithTimestampPrefix(false))
		require.NoError(t, err)
		assert.False(t, gen.TimestampPrefix())
	})
}

func TestGenerator_MissingValues(t *testing.T) {
	t.Parallel()

	gen, err := hashid.New(hashid.WithTimestampPrefix(false))
	require.NoError(t, err)

	t.Run("missing field hashes as empty string", func(t *testing.T) {
		t.Parallel()
		missing := gen.Generate([]string{"message"}, hashid.Record{}, 0)
		empty := gen.Generate([]string{"message"}, hashid.Record{"message": ""}, 0)
		assert.Equal(t, empty, missing)
	})

	t.Run("nil record behaves like an empty one", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			gen.Generate([]string{"message"}, hashid.Record{}, 0),
			gen.Generate([]string{"message"}, nil, 0),
		)
	})
}

func TestGenerator_Split(t *testing.T) {
	t.Parallel()

	gen, err := hashid.New(hashid.WithHashBytesUsed(12))
	require.NoError(t, err)
	assert.Equal(t, 16, gen.Size())
	assert.Equal(t, 12, gen.DigestSize())

	id := gen.Generate([]string{"message"}, hashid.Record{"message": "testmessage"}, fixtureEpoch)
	prefix, digest, err := gen.Split(id)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x56, 0x85, 0xdd, 0xa0}, prefix)
	assert.Equal(t, gen.Sum([]string{"message"}, hashid.Record{"message": "testmessage"}), digest)

	_, _, err = gen.Split("2d2dlskJR2kRLJpD")
	assert.ErrorIs(t, err, hashid.ErrMalformedID, "12 bytes decoded, generator emits 16")

	_, _, err = gen.Split("not base64!")
	assert.ErrorIs(t, err, hashid.ErrMalformedID)
}
