package filter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is how time.Time values are rendered for hashing.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Event is a decoded structured record.
type Event map[string]any

// DecodeEvent parses a JSON object, keeping numbers as json.Number.
func DecodeEvent(data []byte) (Event, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var ev Event
	if err := dec.Decode(&ev); err != nil {
		return nil, errors.Join(ErrInvalidEvent, err)
	}
	if ev == nil {
		return nil, ErrInvalidEvent
	}
	return ev, nil
}

// Lookup resolves a field reference. Both "name" and "[outer][inner]" forms
// are accepted.
func (e Event) Lookup(ref string) (any, bool) {
	path := splitRef(ref)
	var cur any = map[string]any(e)
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Get renders the referenced value as a string. It implements hashid.Getter.
func (e Event) Get(ref string) (string, bool) {
	v, ok := e.Lookup(ref)
	if !ok {
		return "", false
	}
	return Render(v), true
}

// Set stores v under ref, creating intermediate objects for nested references.
// Non-object intermediate values are replaced.
func (e Event) Set(ref string, v any) {
	path := splitRef(ref)
	m := map[string]any(e)
	for _, key := range path[:len(path)-1] {
		next, ok := asMap(m[key])
		if !ok {
			next = map[string]any{}
			m[key] = next
		}
		m = next
	}
	m[path[len(path)-1]] = v
}

// Epoch returns the referenced value as epoch seconds, or 0 when it is
// missing or not a recognised time representation.
func (e Event) Epoch(ref string) int64 {
	v, ok := e.Lookup(ref)
	if !ok {
		return 0
	}
	return toEpoch(v)
}

// Render converts a field value to the string that is hashed.
func Render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case time.Time:
		return x.UTC().Format(TimestampLayout)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.UTC().Format(TimestampLayout)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []byte:
		return string(x)
	case map[string]any, Event, []any:
		return compactJSON(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func toEpoch(v any) int64 {
	switch x := v.(type) {
	case time.Time:
		return x.Unix()
	case *time.Time:
		if x == nil {
			return 0
		}
		return x.Unix()
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return floatEpoch(f)
		}
	case string:
		return parseEpoch(x)
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return floatEpoch(float64(x))
	case float64:
		return floatEpoch(x)
	}
	return 0
}

func parseEpoch(s string) int64 {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Unix()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return floatEpoch(f)
	}
	return 0
}

// floatEpoch truncates toward zero. Values beyond the int64 range keep their
// low 32 bits, which is all the prefix uses.
func floatEpoch(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return int64(math.Mod(f, 1<<32))
	}
	return int64(f)
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Event:
		return m, true
	}
	return nil, false
}

// splitRef turns "[a][b]" into ["a", "b"]. Anything not in bracket form is a
// single top-level key.
func splitRef(ref string) []string {
	if len(ref) < 3 || ref[0] != '[' || ref[len(ref)-1] != ']' {
		return []string{ref}
	}
	parts := strings.Split(ref[1:len(ref)-1], "][")
	for _, p := range parts {
		if p == "" || strings.ContainsAny(p, "[]") {
			return []string{ref}
		}
	}
	return parts
}
