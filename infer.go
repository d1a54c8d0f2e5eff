package jayson

import (
	"github.com/reoring/jayson/internal/format"
	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/value"
)

// Infer derives a schema from one example value. Arrays are typed from their
// first element, objects property by property (every key required when
// allRequired is set), and strings pick up the first matching format.
func Infer(sample value.Value, allRequired bool) *jsonschema.Node {
	switch sample.Kind() {
	case value.KindBool:
		return typed(jsonschema.TypeBoolean)
	case value.KindNumber:
		if sample.IsInteger() {
			return typed(jsonschema.TypeInteger)
		}
		return typed(jsonschema.TypeNumber)
	case value.KindString:
		n := typed(jsonschema.TypeString)
		n.Format = format.Detect(sample.Text())
		return n
	case value.KindArray:
		n := typed(jsonschema.TypeArray)
		if items := sample.Items(); len(items) > 0 {
			n.Items = Infer(items[0], allRequired)
		} else {
			n.Items = &jsonschema.Node{}
		}
		return n
	case value.KindObject:
		n := typed(jsonschema.TypeObject)
		n.Properties = make([]jsonschema.Property, 0, sample.Len())
		for _, m := range sample.Members() {
			n.Properties = append(n.Properties, jsonschema.Property{Name: m.Key, Schema: Infer(m.Value, allRequired)})
			if allRequired {
				n.Required = append(n.Required, m.Key)
			}
		}
		return n
	}
	return typed(jsonschema.TypeNull)
}

// InferDocument wraps Infer with the draft-07 $schema URI and a title.
func InferDocument(sample value.Value, title string, allRequired bool) *jsonschema.Node {
	n := Infer(sample, allRequired)
	n.Schema = jsonschema.Draft07
	n.Title = title
	return n
}

func typed(t jsonschema.Type) *jsonschema.Node {
	return &jsonschema.Node{Type: jsonschema.TypeSet{t}}
}
