package jayson

import (
	"fmt"
	"strings"

	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/value"
)

// SchemaInfo is a flat, human-oriented summary of a schema's root object.
type SchemaInfo struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	RootType       string         `json:"rootType"`
	RequiredFields []string       `json:"requiredFields"`
	Properties     []PropertyInfo `json:"properties"`
}

// PropertyInfo summarizes one top-level property.
type PropertyInfo struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Required    bool     `json:"required"`
	Constraints []string `json:"constraints"`
}

// Describe summarizes schema for display: title, root type, required names
// and, per declared property, a type label and its constraints.
func Describe(schema *jsonschema.Node) SchemaInfo {
	info := SchemaInfo{
		Title:          schema.Title,
		Description:    schema.Description,
		RootType:       schema.Type.String(),
		RequiredFields: append([]string{}, schema.Required...),
		Properties:     make([]PropertyInfo, 0, len(schema.Properties)),
	}
	if info.Title == "" {
		info.Title = "Untitled Schema"
	}
	if info.RootType == "" {
		info.RootType = "unknown"
	}
	for _, p := range schema.Properties {
		info.Properties = append(info.Properties, PropertyInfo{
			Name:        p.Name,
			Type:        typeLabel(p.Schema),
			Description: p.Schema.Description,
			Required:    schema.IsRequired(p.Name),
			Constraints: constraints(p.Schema),
		})
	}
	return info
}

func typeLabel(s *jsonschema.Node) string {
	if len(s.Type) == 0 {
		switch {
		case s.Ref != "":
			return "$ref: " + s.Ref
		case s.HasComposition("oneOf"):
			return "oneOf [...]"
		case s.HasComposition("anyOf"):
			return "anyOf [...]"
		}
		return "any"
	}
	t, single := s.Type.Single()
	switch {
	case !single:
		return s.Type.String()
	case t == jsonschema.TypeArray && s.Items != nil:
		return "array<" + typeLabel(s.Items) + ">"
	case t == jsonschema.TypeObject && s.Properties != nil:
		return "object {...}"
	}
	return string(t)
}

func constraints(s *jsonschema.Node) []string {
	out := []string{}
	if s.MinLength != nil {
		out = append(out, fmt.Sprintf("minLength: %d", *s.MinLength))
	}
	if s.MaxLength != nil {
		out = append(out, fmt.Sprintf("maxLength: %d", *s.MaxLength))
	}
	if s.Minimum != nil {
		out = append(out, "min: "+value.FormatNumber(*s.Minimum))
	}
	if s.Maximum != nil {
		out = append(out, "max: "+value.FormatNumber(*s.Maximum))
	}
	if s.Pattern != "" {
		out = append(out, "pattern: "+s.Pattern)
	}
	if s.Enum != nil {
		names := make([]string, len(s.Enum))
		for i, e := range s.Enum {
			names[i] = e.ToString()
		}
		out = append(out, "enum: ["+strings.Join(names, ", ")+"]")
	}
	if s.MinItems != nil {
		out = append(out, fmt.Sprintf("minItems: %d", *s.MinItems))
	}
	if s.MaxItems != nil {
		out = append(out, fmt.Sprintf("maxItems: %d", *s.MaxItems))
	}
	return out
}
