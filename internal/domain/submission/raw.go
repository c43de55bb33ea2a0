package submission

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// RawSubmission is the loosely typed field map captured by a dynamic form.
// Values are whatever JSON decoding produced: string, json.Number, bool,
// []any, map[string]any or nil. A RawSubmission is treated as immutable;
// every method that derives a new map returns a copy.
type RawSubmission map[string]any

// ParseRawSubmission decodes form data into a RawSubmission.
//
// The input may be a map, a RawSubmission, a JSON object, or a JSON string
// containing an encoded object (the backend stores form_data double encoded
// for older submissions). Anything that does not decode to an object yields
// an empty submission; the function never fails.
func ParseRawSubmission(input any) RawSubmission {
	switch v := input.(type) {
	case nil:
		return RawSubmission{}
	case RawSubmission:
		return v.Clone()
	case map[string]any:
		return RawSubmission(v).Clone()
	case json.RawMessage:
		return decodeRaw([]byte(v), 0)
	case []byte:
		return decodeRaw(v, 0)
	case string:
		return decodeRaw([]byte(v), 0)
	default:
		return RawSubmission{}
	}
}

// decodeRaw unwraps at most one level of string encoding
func decodeRaw(data []byte, depth int) RawSubmission {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return RawSubmission{}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return RawSubmission{}
	}

	switch v := value.(type) {
	case map[string]any:
		return RawSubmission(v)
	case string:
		if depth > 0 {
			return RawSubmission{}
		}
		return decodeRaw([]byte(v), depth+1)
	default:
		return RawSubmission{}
	}
}

// Clone returns a deep copy of the submission
func (r RawSubmission) Clone() RawSubmission {
	out := make(RawSubmission, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = cloneValue(inner)
		}
		return m
	case RawSubmission:
		return map[string]any(t.Clone())
	case []any:
		s := make([]any, len(t))
		for i, inner := range t {
			s[i] = cloneValue(inner)
		}
		return s
	case []string:
		s := make([]any, len(t))
		for i, inner := range t {
			s[i] = inner
		}
		return s
	case []map[string]any:
		s := make([]any, len(t))
		for i, inner := range t {
			s[i] = cloneValue(inner)
		}
		return s
	default:
		return v
	}
}

// Merge returns a new submission with the patch applied on top of r
func (r RawSubmission) Merge(patch map[string]any) RawSubmission {
	out := r.Clone()
	for k, v := range patch {
		out[k] = cloneValue(v)
	}
	return out
}

// Has reports whether the field carries a non-empty value
func (r RawSubmission) Has(field string) bool {
	v, ok := r[field]
	return ok && !IsEmptyValue(v)
}

// Value returns the raw value of a field
func (r RawSubmission) Value(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// String returns the textual form of a scalar field, or "" when the field is
// missing, empty or not a scalar
func (r RawSubmission) String(field string) string {
	return scalarText(r[field])
}

// Strings returns a list field as strings. A single string is treated as a
// one item list and empty items are dropped.
func (r RawSubmission) Strings(field string) []string {
	var out []string
	switch v := r[field].(type) {
	case []any:
		for _, item := range v {
			if s := scalarText(item); strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
	case string:
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// Objects returns a list of object entries for repeating groups such as
// appliances or additional doors. Non-array values yield nil; non-object
// entries are returned as empty maps so that slot positions are preserved.
func (r RawSubmission) Objects(field string) []map[string]any {
	var out []map[string]any
	switch v := r[field].(type) {
	case []any:
		out = make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			} else {
				out = append(out, map[string]any{})
			}
		}
	case []map[string]any:
		out = append(out, v...)
	}
	return out
}

// Fields returns the field names in sorted order
func (r RawSubmission) Fields() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// IsEmptyValue reports whether a raw value should be treated as absent:
// nil, blank strings, and arrays or objects whose members are all empty.
func IsEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case json.Number:
		return t.String() == ""
	case []any:
		for _, item := range t {
			if !IsEmptyValue(item) {
				return false
			}
		}
		return true
	case []string:
		for _, item := range t {
			if strings.TrimSpace(item) != "" {
				return false
			}
		}
		return true
	case map[string]any:
		for _, item := range t {
			if !IsEmptyValue(item) {
				return false
			}
		}
		return true
	case []map[string]any:
		for _, item := range t {
			if !IsEmptyValue(item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// scalarText renders a scalar value as plain text without any display formatting
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// mapText returns the textual form of a key inside a repeating group entry
func mapText(m map[string]any, key string) string {
	return scalarText(m[key])
}
