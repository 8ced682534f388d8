package filter_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hashid/pkg/filter"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestRender(t *testing.T) {
	t.Parallel()

	ts := time.Date(2016, 1, 1, 3, 0, 0, 123456789, time.FixedZone("CET", 3600))

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "testmessage", "testmessage"},
		{"json number int", json.Number("42"), "42"},
		{"json number float", json.Number("1.50"), "1.50"},
		{"time in UTC with millis", ts, "2016-01-01T02:00:00.123Z"},
		{"time pointer", &ts, "2016-01-01T02:00:00.123Z"},
		{"nil time pointer", (*time.Time)(nil), ""},
		{"bool", true, "true"},
		{"int", -7, "-7"},
		{"int64", int64(1451613600), "1451613600"},
		{"uint8", uint8(255), "255"},
		{"float integral", 3.0, "3"},
		{"float fraction", 0.25, "0.25"},
		{"float32", float32(1.5), "1.5"},
		{"bytes", []byte("raw"), "raw"},
		{"map sorted keys", map[string]any{"b": 1, "a": "<x>"}, `{"a":"<x>","b":1}`},
		{"slice", []any{"a", json.Number("1"), nil}, `["a",1,null]`},
		{"stringer", stringer{}, "stringer"},
		{"fallback", struct{ A int }{1}, "{1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, filter.Render(tt.in))
		})
	}
}

func TestDecodeEvent(t *testing.T) {
	t.Parallel()

	ev, err := filter.DecodeEvent([]byte(`{"n": 12345678901234567890, "f": 1.0, "nested": {"a": [1, 2]}}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("12345678901234567890"), ev["n"])
	v, ok := ev.Get("f")
	assert.True(t, ok)
	assert.Equal(t, "1.0", v, "numbers keep their literal text")

	for _, bad := range []string{`[1,2]`, `"str"`, `null`, `{broken`} {
		_, err := filter.DecodeEvent([]byte(bad))
		assert.ErrorIs(t, err, filter.ErrInvalidEvent, bad)
	}
}

func TestEvent_LookupAndSet(t *testing.T) {
	t.Parallel()

	ev := filter.Event{
		"message": "hello",
		"http":    map[string]any{"request": map[string]any{"id": "r-1"}},
		"[odd]":   "literal",
	}

	v, ok := ev.Get("[http][request][id]")
	assert.True(t, ok)
	assert.Equal(t, "r-1", v)

	v, ok = ev.Get("[message]")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	_, ok = ev.Get("[http][response][id]")
	assert.False(t, ok)
	_, ok = ev.Get("[message][x]")
	assert.False(t, ok)
	_, ok = ev.Get("missing")
	assert.False(t, ok)

	_, ok = ev.Get("[odd]")
	assert.False(t, ok, "bracket form addresses the key inside the brackets")
	v, ok = ev.Get("[[odd]")
	assert.False(t, ok)
	assert.Empty(t, v)

	ev.Set("[meta][hashid]", "abc")
	v, _ = ev.Get("[meta][hashid]")
	assert.Equal(t, "abc", v)

	ev.Set("[message][id]", "replaced")
	v, _ = ev.Get("[message][id]")
	assert.Equal(t, "replaced", v)

	ev.Set("hashid", "top")
	assert.Equal(t, "top", ev["hashid"])
}

func TestEvent_Epoch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want int64
	}{
		{"time", time.Unix(1451613600, 999_000_000), 1451613600},
		{"json integer", json.Number("1451613600"), 1451613600},
		{"json float", json.Number("1451613600.9"), 1451613600},
		{"negative float truncates toward zero", -1.9, -1},
		{"int", 42, 42},
		{"rfc3339 string", "2016-01-01T02:00:00.000Z", 1451613600},
		{"rfc3339 with offset", "2016-01-01T03:00:00+01:00", 1451613600},
		{"numeric string", "1451613600", 1451613600},
		{"float string", "12.7", 12},
		{"garbage string", "yesterday", 0},
		{"nan", math.NaN(), 0},
		{"huge float keeps low bits", 1e20, int64(math.Mod(1e20, 1<<32))},
		{"bool", true, 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ev := filter.Event{"ts": tt.in}
			assert.Equal(t, tt.want, ev.Epoch("ts"))
		})
	}

	assert.Zero(t, filter.Event{}.Epoch("ts"), "missing timestamp is epoch 0")
}
