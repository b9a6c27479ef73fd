package docstore

import (
	"math"
	"time"
)

// Fields is the store-neutral representation of a document body. Values are scalars:
// string, bool, int64, float64 or time.Time. Backends normalise their native numeric and
// date types into these on read, so the accessors below accept every integer and float
// width that a driver might hand back.
type Fields map[string]any

func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// SetOptional stores value under key unless value is nil.
func SetOptional[T any](f Fields, key string, value *T) {
	if value != nil {
		f[key] = *value
	}
}

func (f Fields) String(key string) (string, bool) {
	s, ok := f[key].(string)
	return s, ok
}

func (f Fields) Float(key string) (float64, bool) {
	switch v := f[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func (f Fields) Int(key string) (int, bool) {
	switch v := f[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

func (f Fields) Time(key string) (time.Time, bool) {
	switch v := f[key].(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}

// OptionalString returns nil when key is absent or not a string.
func (f Fields) OptionalString(key string) *string {
	if s, ok := f.String(key); ok {
		return &s
	}
	return nil
}

func (f Fields) OptionalFloat(key string) *float64 {
	if v, ok := f.Float(key); ok {
		return &v
	}
	return nil
}

func (f Fields) OptionalInt(key string) *int {
	if v, ok := f.Int(key); ok {
		return &v
	}
	return nil
}
