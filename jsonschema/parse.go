package jsonschema

import (
	"fmt"
	"math"

	"github.com/reoring/jayson/value"
)

// Diag carries non-fatal warnings produced while reading a schema document.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }

// compositionKeywords are recognised but not applied; their presence is
// reported as a warning and the node stays permissive.
var compositionKeywords = []string{"oneOf", "anyOf", "allOf", "not", "if", "then", "else"}

// Parse decodes JSON schema text and reads it with FromValue.
func Parse(data []byte) (*Node, Diag, error) {
	v, err := value.Parse(data)
	if err != nil {
		return nil, &simpleDiag{}, err
	}
	n, d := FromValue(v)
	return n, d, nil
}

// FromValue reads a schema document. It never fails: keywords with the wrong
// JSON type are dropped with a warning, unsupported keywords are recorded on
// the node, and a document that is not an object yields an unconstrained node.
func FromValue(v value.Value) (*Node, Diag) {
	d := &simpleDiag{}
	return readNode(v, "#", d), d
}

func readNode(v value.Value, at string, d *simpleDiag) *Node {
	n := &Node{}
	if v.Kind() != value.KindObject {
		if v.Kind() != value.KindBool || !v.Bool() {
			d.warnf("%s: schema must be an object, got %s; accepting any value", at, v.Kind())
		}
		return n
	}

	n.Schema = readString(v, "$schema", at, d)
	n.Title = readString(v, "title", at, d)
	n.Description = readString(v, "description", at, d)
	n.Format = readString(v, "format", at, d)
	n.Type = readType(v, at, d)

	if props, ok := v.Get("properties"); ok {
		if props.Kind() != value.KindObject {
			d.warnf("%s/properties: expected an object, got %s", at, props.Kind())
		} else {
			n.Properties = make([]Property, 0, props.Len())
			for _, m := range props.Members() {
				n.Properties = append(n.Properties, Property{
					Name:   m.Key,
					Schema: readNode(m.Value, at+"/properties/"+m.Key, d),
				})
			}
		}
	}
	if req, ok := v.Get("required"); ok {
		n.Required = readRequired(req, at, d)
		for _, r := range n.Required {
			if _, ok := n.Property(r); !ok {
				d.warnf("%s/required: %q is not declared in properties; ignored", at, r)
			}
		}
	}
	if items, ok := v.Get("items"); ok {
		if items.Kind() == value.KindArray {
			d.warnf("%s/items: tuple form is not supported; accepting any items", at)
		} else {
			n.Items = readNode(items, at+"/items", d)
		}
	}

	n.MinItems = readCount(v, "minItems", at, d)
	n.MaxItems = readCount(v, "maxItems", at, d)
	n.MinLength = readCount(v, "minLength", at, d)
	n.MaxLength = readCount(v, "maxLength", at, d)
	n.Minimum = readNumber(v, "minimum", at, d)
	n.Maximum = readNumber(v, "maximum", at, d)

	if p, ok := v.Get("pattern"); ok {
		if p.Kind() != value.KindString {
			d.warnf("%s/pattern: expected a string, got %s; ignored", at, p.Kind())
		} else if p.Text() != "" {
			n.Pattern = p.Text()
			n.compilePattern()
			if n.patternErr != nil {
				d.warnf("%s/pattern: %v", at, n.patternErr)
			}
		}
	}
	if e, ok := v.Get("enum"); ok {
		if e.Kind() != value.KindArray {
			d.warnf("%s/enum: expected an array, got %s; ignored", at, e.Kind())
		} else {
			n.Enum = append([]value.Value(nil), e.Items()...)
		}
	}
	if def, ok := v.Get("default"); ok {
		n.Default = &def
	}
	if ref, ok := v.Get("$ref"); ok {
		if ref.Kind() == value.KindString {
			n.Ref = ref.Text()
			d.warnf("%s: $ref %q is not resolved; accepting any value", at, n.Ref)
		} else {
			d.warnf("%s/$ref: expected a string, got %s; ignored", at, ref.Kind())
		}
	}
	for _, k := range compositionKeywords {
		if v.Has(k) {
			n.Unsupported = append(n.Unsupported, k)
			d.warnf("%s: %q is not supported; accepting any value", at, k)
		}
	}
	return n
}

func readString(v value.Value, key, at string, d *simpleDiag) string {
	x, ok := v.Get(key)
	if !ok {
		return ""
	}
	if x.Kind() != value.KindString {
		d.warnf("%s/%s: expected a string, got %s; ignored", at, key, x.Kind())
		return ""
	}
	return x.Text()
}

func readType(v value.Value, at string, d *simpleDiag) TypeSet {
	x, ok := v.Get("type")
	if !ok {
		return nil
	}
	var names []value.Value
	switch x.Kind() {
	case value.KindString:
		names = []value.Value{x}
	case value.KindArray:
		names = x.Items()
	default:
		d.warnf("%s/type: expected a string or an array, got %s; ignored", at, x.Kind())
		return nil
	}
	var ts TypeSet
	for _, nv := range names {
		if nv.Kind() != value.KindString {
			d.warnf("%s/type: non-string entry %s ignored", at, nv)
			continue
		}
		t := Type(nv.Text())
		if !t.Known() {
			d.warnf("%s/type: unknown type %q", at, t)
		}
		ts = append(ts, t)
	}
	return ts
}

func readRequired(req value.Value, at string, d *simpleDiag) []string {
	if req.Kind() != value.KindArray {
		d.warnf("%s/required: expected an array, got %s; ignored", at, req.Kind())
		return nil
	}
	out := make([]string, 0, req.Len())
	for _, r := range req.Items() {
		if r.Kind() != value.KindString {
			d.warnf("%s/required: non-string entry %s ignored", at, r)
			continue
		}
		out = append(out, r.Text())
	}
	return out
}

func readCount(v value.Value, key, at string, d *simpleDiag) *int {
	x, ok := v.Get(key)
	if !ok {
		return nil
	}
	if x.Kind() != value.KindNumber || !x.IsInteger() || x.Float() < 0 || x.Float() > math.MaxInt32 {
		d.warnf("%s/%s: expected a non-negative integer, got %s; ignored", at, key, x)
		return nil
	}
	return IntPtr(int(x.Float()))
}

func readNumber(v value.Value, key, at string, d *simpleDiag) *float64 {
	x, ok := v.Get(key)
	if !ok {
		return nil
	}
	if x.Kind() != value.KindNumber {
		d.warnf("%s/%s: expected a number, got %s; ignored", at, key, x.Kind())
		return nil
	}
	return FloatPtr(x.Float())
}
