package value

import (
	"bytes"
	"math"
	"sort"

	j "github.com/goccy/go-json"
)

// Marshal renders v as compact JSON, matching JSON.stringify(v).
func Marshal(v Value) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v, "", "")
	return buf.Bytes()
}

// MarshalIndent renders v with one member or element per line, matching
// JSON.stringify(v, null, indent). Empty containers stay on one line.
func MarshalIndent(v Value, indent string) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v, "\n", indent)
	return buf.Bytes()
}

// Pretty renders v with the two-space indentation used by every text output.
func Pretty(v Value) string { return string(MarshalIndent(v, "  ")) }

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) { return Marshal(v), nil }

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(b []byte) error {
	d, err := Parse(b)
	if err != nil {
		return err
	}
	*v = d
	return nil
}

func writeValue(buf *bytes.Buffer, v Value, prefix, indent string) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			buf.WriteString("null")
			return
		}
		buf.WriteString(FormatNumber(v.n))
	case KindString:
		writeString(buf, v.s)
	case KindArray:
		if len(v.items) == 0 {
			buf.WriteString("[]")
			return
		}
		inner := prefix + indent
		buf.WriteByte('[')
		for i, it := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(inner)
			writeValue(buf, it, inner, indent)
		}
		buf.WriteString(prefix)
		buf.WriteByte(']')
	case KindObject:
		if len(v.members) == 0 {
			buf.WriteString("{}")
			return
		}
		inner := prefix + indent
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(inner)
			writeString(buf, m.Key)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			writeValue(buf, m.Value, inner, indent)
		}
		buf.WriteString(prefix)
		buf.WriteByte('}')
	}
}

func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := j.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		buf.WriteString(`""`)
		return
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
}

// FromAny converts a decoded Go value (as produced by encoding/json, go-json
// or yaml.v3 into any) to a Value. Map keys are sorted because Go maps carry
// no order. Unsupported types become null.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case int32:
		return Int(int64(t))
	case uint64:
		return Number(float64(t))
	case j.Number:
		f, _ := t.Float64()
		return Number(f)
	case []any:
		items := make([]Value, len(t))
		for i := range t {
			items[i] = FromAny(t[i])
		}
		return Array(items...)
	case []string:
		items := make([]Value, len(t))
		for i := range t {
			items[i] = String(t[i])
		}
		return Array(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, k := range keys {
			members[i] = Member{Key: k, Value: FromAny(t[k])}
		}
		return Object(members...)
	default:
		return Null()
	}
}
