package jsonschema

import "github.com/reoring/jayson/value"

// ToValue projects n back into a JSON Schema document. Keys are emitted in a
// fixed order ($schema, title, description, type, format, enum, default,
// numeric and length constraints, properties, required, items, $ref) so the
// output is stable. A single type renders as a string, a union as an array.
func (n *Node) ToValue() value.Value {
	var b value.ObjectBuilder
	if n.Schema != "" {
		b.Set("$schema", value.String(n.Schema))
	}
	if n.Title != "" {
		b.Set("title", value.String(n.Title))
	}
	if n.Description != "" {
		b.Set("description", value.String(n.Description))
	}
	switch len(n.Type) {
	case 0:
	case 1:
		b.Set("type", value.String(string(n.Type[0])))
	default:
		ts := make([]value.Value, len(n.Type))
		for i, t := range n.Type {
			ts[i] = value.String(string(t))
		}
		b.Set("type", value.Array(ts...))
	}
	if n.Format != "" {
		b.Set("format", value.String(n.Format))
	}
	if n.Enum != nil {
		b.Set("enum", value.Array(n.Enum...))
	}
	if n.Default != nil {
		b.Set("default", *n.Default)
	}
	setInt(&b, "minLength", n.MinLength)
	setInt(&b, "maxLength", n.MaxLength)
	if n.Pattern != "" {
		b.Set("pattern", value.String(n.Pattern))
	}
	setFloat(&b, "minimum", n.Minimum)
	setFloat(&b, "maximum", n.Maximum)
	setInt(&b, "minItems", n.MinItems)
	setInt(&b, "maxItems", n.MaxItems)
	if n.Properties != nil {
		var props value.ObjectBuilder
		for _, p := range n.Properties {
			props.Set(p.Name, p.Schema.ToValue())
		}
		b.Set("properties", props.Build())
	}
	if n.Required != nil {
		rs := make([]value.Value, len(n.Required))
		for i, r := range n.Required {
			rs[i] = value.String(r)
		}
		b.Set("required", value.Array(rs...))
	}
	if n.Items != nil {
		b.Set("items", n.Items.ToValue())
	}
	if n.Ref != "" {
		b.Set("$ref", value.String(n.Ref))
	}
	return b.Build()
}

func setInt(b *value.ObjectBuilder, key string, p *int) {
	if p != nil {
		b.Set(key, value.Int(int64(*p)))
	}
}

func setFloat(b *value.ObjectBuilder, key string, p *float64) {
	if p != nil {
		b.Set(key, value.Number(*p))
	}
}
