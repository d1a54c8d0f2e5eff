package transform

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/reoring/jayson/value"
)

// Apply runs op over records and returns a new slice; records is not
// modified.
func Apply(records []value.Value, op Operation) ([]value.Value, error) {
	if op == nil {
		return nil, fmt.Errorf("transform: nil operation")
	}
	return op.apply(records)
}

// ApplyValue runs op over input. An array is used as the record list; any
// other value is treated as a single record.
func ApplyValue(input value.Value, op Operation) (value.Value, error) {
	out, err := Apply(Records(input), op)
	if err != nil {
		return value.Value{}, err
	}
	return value.Array(out...), nil
}

// Records returns the items of an array, or input wrapped in a one-element
// slice.
func Records(input value.Value) []value.Value {
	if input.Kind() == value.KindArray {
		return input.Items()
	}
	return []value.Value{input}
}

// DetectFields lists the keys of the first record, in document order. It
// returns nil when there is no record or the first one is not an object.
func DetectFields(input value.Value) []string {
	recs := Records(input)
	if len(recs) == 0 || recs[0].Kind() != value.KindObject {
		return nil
	}
	return recs[0].Keys()
}

// field reads key from rec. Non-object records have no fields.
func field(rec value.Value, key string) (value.Value, bool) {
	if rec.Kind() != value.KindObject {
		return value.Value{}, false
	}
	return rec.Get(key)
}

func stringOf(v value.Value, ok bool) string {
	if !ok {
		return "undefined"
	}
	return v.ToString()
}

func numberOf(v value.Value, ok bool) float64 {
	if !ok {
		return math.NaN()
	}
	return v.ToNumber()
}

func (e Extract) apply(records []value.Value) ([]value.Value, error) {
	if len(e.Fields) == 0 {
		return slices.Clone(records), nil
	}
	out := make([]value.Value, len(records))
	for i, rec := range records {
		var b value.ObjectBuilder
		for _, f := range e.Fields {
			if v, ok := field(rec, f); ok {
				b.Set(f, v)
			}
		}
		out[i] = b.Build()
	}
	return out, nil
}

func (f Filter) apply(records []value.Value) ([]value.Value, error) {
	var keep func(v value.Value, ok bool) bool
	switch f.Operator {
	case Eq:
		want := f.Value.ToString()
		keep = func(v value.Value, ok bool) bool { return stringOf(v, ok) == want }
	case Neq:
		want := f.Value.ToString()
		keep = func(v value.Value, ok bool) bool { return stringOf(v, ok) != want }
	case Gt:
		want := f.Value.ToNumber()
		keep = func(v value.Value, ok bool) bool { return numberOf(v, ok) > want }
	case Lt:
		want := f.Value.ToNumber()
		keep = func(v value.Value, ok bool) bool { return numberOf(v, ok) < want }
	case Contains:
		want := strings.ToLower(f.Value.ToString())
		keep = func(v value.Value, ok bool) bool {
			return strings.Contains(strings.ToLower(stringOf(v, ok)), want)
		}
	default:
		return nil, fmt.Errorf("transform: unknown operator %q", f.Operator)
	}
	out := make([]value.Value, 0, len(records))
	for _, rec := range records {
		if keep(field(rec, f.Field)) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m Map) apply(records []value.Value) ([]value.Value, error) {
	if len(m.Renames) == 0 {
		return slices.Clone(records), nil
	}
	out := make([]value.Value, len(records))
	for i, rec := range records {
		var b value.ObjectBuilder
		for _, r := range m.Renames {
			src := r.OldKey
			if src == "" {
				src = r.NewKey
			}
			if v, ok := field(rec, src); ok {
				b.Set(r.NewKey, v)
			}
		}
		out[i] = b.Build()
	}
	return out, nil
}

func (s Sort) apply(records []value.Value) ([]value.Value, error) {
	tag := language.Und
	if s.Locale != "" {
		t, err := language.Parse(s.Locale)
		if err != nil {
			return nil, fmt.Errorf("transform: locale %q: %w", s.Locale, err)
		}
		tag = t
	}
	var sign int
	switch s.Direction {
	case "", Asc:
		sign = 1
	case Desc:
		sign = -1
	default:
		return nil, fmt.Errorf("transform: unknown sort direction %q", s.Direction)
	}
	// Collators keep internal buffers and are not safe for concurrent use, so
	// each call gets its own.
	col := collate.New(tag)
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b value.Value) int {
		return sign * s.compare(col, a, b)
	})
	return out, nil
}

func (s Sort) compare(col *collate.Collator, a, b value.Value) int {
	av, aok := field(a, s.Field)
	bv, bok := field(b, s.Field)
	if aok && bok && av.Kind() == value.KindString && bv.Kind() == value.KindString {
		return col.CompareString(av.Text(), bv.Text())
	}
	d := numberOf(av, aok) - numberOf(bv, bok)
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	// equal or NaN
	return 0
}
