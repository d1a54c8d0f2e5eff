// Package transform reshapes arrays of JSON records: extract fields, filter
// by a predicate, rename/project keys, and sort. Field values are compared the
// way JavaScript's String() and Number() coerce them.
package transform

import (
	"fmt"
	"strings"

	"github.com/reoring/jayson/value"
)

// Operation is one of Extract, Filter, Map or Sort.
type Operation interface {
	// Name returns the descriptor name ("extract", "filter", "map", "sort").
	Name() string
	apply(records []value.Value) ([]value.Value, error)
}

// Extract projects each record onto Fields. A field missing from a record is
// left out of that record's projection. No fields returns the records as-is.
type Extract struct {
	Fields []string
}

// Operator defines the comparison used by Filter.
type Operator string

const (
	Eq       Operator = "eq"
	Neq      Operator = "neq"
	Gt       Operator = "gt"
	Lt       Operator = "lt"
	Contains Operator = "contains"
)

// ParseOperator maps a descriptor name (or its symbol) to an Operator.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(s) {
	case "eq", "==", "=":
		return Eq, nil
	case "neq", "ne", "!=":
		return Neq, nil
	case "gt", ">":
		return Gt, nil
	case "lt", "<":
		return Lt, nil
	case "contains":
		return Contains, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Filter keeps records whose Field satisfies Operator against Value.
//
// eq/neq compare String() forms; gt/lt compare Number() forms, so a
// non-numeric side is NaN and the record is dropped; contains is a
// case-insensitive substring test on String() forms. A missing field reads as
// undefined ("undefined", NaN).
type Filter struct {
	Field    string
	Operator Operator
	Value    value.Value
}

// Rename is one "new: old" entry of a Map. An empty OldKey copies NewKey
// unchanged.
type Rename struct {
	NewKey string
	OldKey string
}

// Map rebuilds each record from Renames, in order. Keys not named by any
// entry are dropped. No renames returns the records as-is.
type Map struct {
	Renames []Rename
}

// Direction is the Sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc" and "desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "asc", "ascending":
		return Asc, nil
	case "desc", "descending":
		return Desc, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// Sort orders records by Field. Two strings compare with locale-aware
// collation (Locale is a BCP 47 tag, empty for the root collation); any other
// pair compares Number() forms, and a NaN comparison counts as equal. The sort
// is stable and Desc negates the comparison, so ties keep input order.
type Sort struct {
	Field     string
	Direction Direction
	Locale    string
}

func (Extract) Name() string { return "extract" }
func (Filter) Name() string  { return "filter" }
func (Map) Name() string     { return "map" }
func (Sort) Name() string    { return "sort" }

// ParseMapExpression reads the "new: old, keep" syntax into renames.
// Entries are separated by commas; an entry without a colon keeps its key.
func ParseMapExpression(expr string) []Rename {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}
	var out []Rename
	for _, part := range strings.Split(expr, ",") {
		kv := strings.Split(strings.TrimSpace(part), ":")
		r := Rename{NewKey: strings.TrimSpace(kv[0])}
		if len(kv) > 1 {
			r.OldKey = strings.TrimSpace(kv[1])
		}
		if r.NewKey == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
