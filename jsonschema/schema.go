// Package jsonschema holds the structural model of the JSON Schema subset the
// toolkit understands. A Node is parsed once from a JSON (or YAML) document;
// every constraint is typed and validated at parse time so consumers never
// probe loosely-typed maps.
package jsonschema

import (
	"regexp"
	"strings"

	"github.com/reoring/jayson/value"
)

// Draft07 is the $schema URI stamped on inferred documents.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// Type is a JSON Schema type name.
type Type string

const (
	TypeNull    Type = "null"
	TypeBoolean Type = "boolean"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeString  Type = "string"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Known reports whether t is one of the seven JSON Schema type names.
func (t Type) Known() bool {
	switch t {
	case TypeNull, TypeBoolean, TypeInteger, TypeNumber, TypeString, TypeArray, TypeObject:
		return true
	}
	return false
}

// TypeOf returns the JSON Schema type of v. Numbers always report "number".
func TypeOf(v value.Value) Type {
	switch v.Kind() {
	case value.KindBool:
		return TypeBoolean
	case value.KindNumber:
		return TypeNumber
	case value.KindString:
		return TypeString
	case value.KindArray:
		return TypeArray
	case value.KindObject:
		return TypeObject
	}
	return TypeNull
}

// TypeSet is the declared type of a node: one name, or several for a union.
// An empty set means the type is unconstrained.
type TypeSet []Type

// Has reports whether t is in the set.
func (s TypeSet) Has(t Type) bool {
	for _, x := range s {
		if x == t {
			return true
		}
	}
	return false
}

// Single returns the only member of a one-element set.
func (s TypeSet) Single() (Type, bool) {
	if len(s) != 1 {
		return "", false
	}
	return s[0], true
}

// String joins the members with " | ".
func (s TypeSet) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = string(t)
	}
	return strings.Join(parts, " | ")
}

// Accepts reports whether v matches at least one member. "integer" accepts
// only integral numbers; "number" accepts all numbers.
func (s TypeSet) Accepts(v value.Value) bool {
	actual := TypeOf(v)
	for _, t := range s {
		switch t {
		case TypeInteger:
			if actual == TypeNumber && v.IsInteger() {
				return true
			}
		default:
			if t == actual {
				return true
			}
		}
	}
	return false
}

// Property is a named entry of "properties", kept in document order.
type Property struct {
	Name   string
	Schema *Node
}

// Node is one JSON Schema fragment.
type Node struct {
	Schema      string
	Title       string
	Description string
	Type        TypeSet

	// object
	Properties []Property
	Required   []string

	// array
	Items    *Node
	MinItems *int
	MaxItems *int

	// string
	MinLength *int
	MaxLength *int
	Pattern   string
	Enum      []value.Value
	Format    string

	// number
	Minimum *float64
	Maximum *float64

	Default *value.Value

	// Ref is the unresolved "$ref" target, if any.
	Ref string
	// Unsupported lists composition keywords present on the node (oneOf,
	// anyOf, allOf, not, if, then, else). They are accepted but not applied.
	Unsupported []string

	pattern     *regexp.Regexp
	patternErr  error
	compiledFor string
}

// Property returns the declared property called name.
func (n *Node) Property(name string) (*Node, bool) {
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

// IsRequired reports whether name is a declared, required property.
func (n *Node) IsRequired(name string) bool {
	if _, ok := n.Property(name); !ok {
		return false
	}
	for _, r := range n.Required {
		if r == name {
			return true
		}
	}
	return false
}

// RequiredProperties returns the required names that are declared in
// properties, in "required" order. Undeclared names are ignored.
func (n *Node) RequiredProperties() []string {
	out := make([]string, 0, len(n.Required))
	for _, r := range n.Required {
		if _, ok := n.Property(r); ok {
			out = append(out, r)
		}
	}
	return out
}

// PatternRegexp returns the compiled pattern. It returns (nil, nil) when no
// pattern is set and a non-nil error when the pattern does not compile.
// Nodes built by FromValue reuse the expression compiled at parse time.
func (n *Node) PatternRegexp() (*regexp.Regexp, error) {
	if n.Pattern == "" {
		return nil, nil
	}
	if n.compiledFor == n.Pattern {
		return n.pattern, n.patternErr
	}
	return regexp.Compile(n.Pattern)
}

func (n *Node) compilePattern() {
	n.pattern, n.patternErr = regexp.Compile(n.Pattern)
	n.compiledFor = n.Pattern
}

// HasComposition reports whether keyword is among the unsupported keywords
// present on the node.
func (n *Node) HasComposition(keyword string) bool {
	for _, k := range n.Unsupported {
		if k == keyword {
			return true
		}
	}
	return false
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int { return &i }

// FloatPtr returns a pointer to f.
func FloatPtr(f float64) *float64 { return &f }
