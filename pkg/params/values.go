package params

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Values is one configuration instance: a mapping from parameter name to
// concrete value. A key can be absent, present with a nil value, or present
// with a concrete value; legacy-name migration relies on the distinction
// between absent and present.
//
// Keys loaded from a file that do not correspond to any declared parameter
// are kept verbatim; a few derivations inspect such keys (for example
// n_words_src in configurations written before factored input existed).
type Values struct {
	m map[string]any
}

// NewValues returns an empty configuration instance.
func NewValues() *Values {
	return &Values{m: map[string]any{}}
}

// Has reports whether the key is present, even with a nil value.
func (v *Values) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

// IsSet reports whether the key is present with a non-nil value.
func (v *Values) IsSet(name string) bool {
	val, ok := v.m[name]
	return ok && val != nil
}

// Get returns the raw value, or nil if the key is absent.
func (v *Values) Get(name string) any {
	return v.m[name]
}

func (v *Values) Set(name string, val any) {
	v.m[name] = val
}

func (v *Values) Delete(name string) {
	delete(v.m, name)
}

// Names returns all present keys in sorted order.
func (v *Values) Names() []string {
	res := make([]string, 0, len(v.m))
	for k := range v.m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Map returns a shallow copy of the underlying mapping, suitable for
// serialization.
func (v *Values) Map() map[string]any {
	res := make(map[string]any, len(v.m))
	for k, val := range v.m {
		res[k] = val
	}
	return res
}

// Typed accessors. The non-Lookup variants panic when the value is absent or
// has the wrong type; they are used where a prior phase guarantees the value,
// so a failure is a programming error.

func (v *Values) Bool(name string) bool {
	b, ok := v.LookupBool(name)
	if !ok {
		panic(fmt.Sprintf("params: %q is not a bool", name))
	}
	return b
}

func (v *Values) LookupBool(name string) (bool, bool) {
	b, ok := v.m[name].(bool)
	return b, ok
}

func (v *Values) Int(name string) int {
	i, ok := v.LookupInt(name)
	if !ok {
		panic(fmt.Sprintf("params: %q is not an int", name))
	}
	return i
}

func (v *Values) LookupInt(name string) (int, bool) {
	i, ok := v.m[name].(int)
	return i, ok
}

func (v *Values) Float(name string) float64 {
	f, ok := v.LookupFloat(name)
	if !ok {
		panic(fmt.Sprintf("params: %q is not a float", name))
	}
	return f
}

func (v *Values) LookupFloat(name string) (float64, bool) {
	f, ok := v.m[name].(float64)
	return f, ok
}

func (v *Values) String(name string) string {
	s, ok := v.LookupString(name)
	if !ok {
		panic(fmt.Sprintf("params: %q is not a string", name))
	}
	return s
}

func (v *Values) LookupString(name string) (string, bool) {
	s, ok := v.m[name].(string)
	return s, ok
}

// Strings returns a string-list value, or nil when the key is absent or nil.
func (v *Values) Strings(name string) []string {
	ss, _ := v.m[name].([]string)
	return ss
}

// Ints returns an int-list value, or nil when the key is absent or nil.
func (v *Values) Ints(name string) []int {
	ii, _ := v.m[name].([]int)
	return ii
}

// Coerce converts a raw value decoded from a configuration file into the
// canonical in-memory representation for the given kind. Numbers arrive as
// json.Number, float64 or integer types depending on the decoder.
func Coerce(kind Kind, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	switch kind {
	case KindBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case KindInt:
		if i, ok := toInt(raw); ok {
			return i, nil
		}
	case KindFloat:
		if f, ok := toFloat(raw); ok {
			return f, nil
		}
	case KindString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case KindInts:
		if ii, ok := toIntSlice(raw); ok {
			return ii, nil
		}
	case KindStrings, KindStringPair:
		if ss, ok := toStringSlice(raw); ok {
			return ss, nil
		}
	}
	return nil, fmt.Errorf("cannot use %v (%T) as %s", raw, raw, kindName(kind))
}

// CoerceUnknown normalizes a raw value for a key that has no declared
// parameter: integral numbers become int, other numbers float64, lists are
// normalized element-wise.
func CoerceUnknown(raw any) any {
	switch val := raw.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i)
		}
		f, _ := val.Float64()
		return f
	case float64:
		if float64(int(val)) == val {
			return int(val)
		}
		return val
	case int64:
		return int(val)
	case int8, int16, int32, uint8, uint16, uint32, uint64, uint:
		i, _ := toInt(val)
		return i
	case []any:
		res := make([]any, len(val))
		for i, item := range val {
			res[i] = CoerceUnknown(item)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(val))
		for k, item := range val {
			res[k] = CoerceUnknown(item)
		}
		return res
	default:
		return raw
	}
}

func toInt(raw any) (int, bool) {
	switch val := raw.(type) {
	case int:
		return val, true
	case int8:
		return int(val), true
	case int16:
		return int(val), true
	case int32:
		return int(val), true
	case int64:
		return int(val), true
	case uint:
		return int(val), true
	case uint8:
		return int(val), true
	case uint16:
		return int(val), true
	case uint32:
		return int(val), true
	case uint64:
		return int(val), true
	case float64:
		if float64(int(val)) == val {
			return int(val), true
		}
	case float32:
		if float32(int(val)) == val {
			return int(val), true
		}
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

func toFloat(raw any) (float64, bool) {
	switch val := raw.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f, true
		}
	default:
		if i, ok := toInt(raw); ok {
			return float64(i), true
		}
	}
	return 0, false
}

func toIntSlice(raw any) ([]int, bool) {
	switch val := raw.(type) {
	case []int:
		return val, true
	case []any:
		res := make([]int, len(val))
		for i, item := range val {
			n, ok := toInt(item)
			if !ok {
				return nil, false
			}
			res[i] = n
		}
		return res, true
	}
	return nil, false
}

func toStringSlice(raw any) ([]string, bool) {
	switch val := raw.(type) {
	case []string:
		return val, true
	case []any:
		res := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			res[i] = s
		}
		return res, true
	}
	return nil, false
}

func kindName(kind Kind) string {
	switch kind {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindInts:
		return "int list"
	case KindStrings:
		return "string list"
	case KindStringPair:
		return "string pair"
	}
	return "unknown"
}
