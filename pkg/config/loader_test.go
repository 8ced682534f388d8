package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hashid/pkg/config"
)

type hashConfig struct {
	Method string   `env:"TEST_HASHID_METHOD" envDefault:"MD5" yaml:"method"`
	Key    string   `env:"TEST_HASHID_KEY" envDefault:"hashid" yaml:"key"`
	Fields []string `env:"TEST_HASHID_FIELDS" envSeparator:"," envDefault:"message" yaml:"fields"`
	Bytes  int      `env:"TEST_HASHID_BYTES" yaml:"bytes"`
	Prefix bool     `env:"TEST_HASHID_PREFIX" envDefault:"true" yaml:"prefix"`
}

type requiredConfig struct {
	Key string `env:"TEST_HASHID_REQUIRED_KEY,required"`
}

func unsetHashEnv() {
	for _, k := range []string{
		"TEST_HASHID_METHOD", "TEST_HASHID_KEY", "TEST_HASHID_FIELDS",
		"TEST_HASHID_BYTES", "TEST_HASHID_PREFIX", "TEST_HASHID_REQUIRED_KEY",
	} {
		os.Unsetenv(k)
	}
	config.ResetCache()
}

func TestLoad_Defaults(t *testing.T) {
	unsetHashEnv()

	var cfg hashConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "MD5", cfg.Method)
	assert.Equal(t, "hashid", cfg.Key)
	assert.Equal(t, []string{"message"}, cfg.Fields)
	assert.Zero(t, cfg.Bytes)
	assert.True(t, cfg.Prefix)
}

func TestLoad_CachedPerType(t *testing.T) {
	unsetHashEnv()
	t.Setenv("TEST_HASHID_METHOD", "SHA1")

	var first hashConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "SHA1", first.Method)

	t.Setenv("TEST_HASHID_METHOD", "SHA384")
	var second hashConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "SHA1", second.Method, "cached value should be returned")

	var reloaded hashConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "SHA384", reloaded.Method)
}

func TestLoad_MissingRequired(t *testing.T) {
	unsetHashEnv()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("TEST_HASHID_REQUIRED_KEY", "secret")
	require.NoError(t, config.Load(&cfg), "a failed parse must not poison the cache")
	assert.Equal(t, "secret", cfg.Key)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *hashConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.LoadFile("testdata/filter.yaml", cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	unsetHashEnv()

	assert.NotPanics(t, func() {
		var cfg hashConfig
		config.MustLoad(&cfg)
	})
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("custom file", func(t *testing.T) {
		unsetHashEnv()
		t.Cleanup(unsetHashEnv)

		require.NoError(t, config.LoadEnv("testdata/.env.custom"))

		var cfg hashConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "SHA256", cfg.Method)
		assert.Equal(t, "quoted secret", cfg.Key)
		assert.Equal(t, []string{"message", "host", "path"}, cfg.Fields)
		assert.Equal(t, 12, cfg.Bytes)
		assert.False(t, cfg.Prefix)
	})

	t.Run("later files win", func(t *testing.T) {
		unsetHashEnv()
		t.Cleanup(unsetHashEnv)

		require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

		var cfg hashConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "SHA512", cfg.Method)
		assert.Equal(t, 12, cfg.Bytes)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrReadingFile)
		assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("file overrides env", func(t *testing.T) {
		unsetHashEnv()
		t.Setenv("TEST_HASHID_KEY", "from-env")
		t.Setenv("TEST_HASHID_BYTES", "8")

		var cfg hashConfig
		require.NoError(t, config.LoadFile("testdata/filter.yaml", &cfg))
		assert.Equal(t, "sha1", cfg.Method)
		assert.Equal(t, []string{"part1", "part2"}, cfg.Fields)
		assert.True(t, cfg.Prefix)
		assert.Equal(t, "from-env", cfg.Key, "keys absent from the file keep env values")
		assert.Equal(t, 8, cfg.Bytes)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg hashConfig
		err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), &cfg)
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		var cfg hashConfig
		err := config.LoadFile("testdata/broken.yaml", &cfg)
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})
}
