package jayson

import (
	"math"
	"time"

	"github.com/reoring/jayson/internal/format"
	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/value"
)

// GenerateTemplate synthesizes an example value for schema. Only a single
// declared type is generated; unions, unknown and missing types yield null.
// The clock is read once per call, so every date/time in one template agrees.
func GenerateTemplate(schema *jsonschema.Node, opt TemplateOpt) value.Value {
	g := templateGen{opt: opt, now: opt.now()}
	return g.node(schema)
}

type templateGen struct {
	opt TemplateOpt
	now time.Time
}

func (g templateGen) node(s *jsonschema.Node) value.Value {
	if s == nil {
		return value.Null()
	}
	if g.opt.UseDefaults && s.Default != nil {
		return *s.Default
	}
	t, _ := s.Type.Single()
	switch t {
	case jsonschema.TypeObject:
		var b value.ObjectBuilder
		for _, p := range s.Properties {
			if g.opt.IncludeOptional || s.IsRequired(p.Name) {
				b.Set(p.Name, g.node(p.Schema))
			}
		}
		return b.Build()
	case jsonschema.TypeArray:
		if s.Items == nil {
			return value.Array()
		}
		return value.Array(g.node(s.Items))
	case jsonschema.TypeString:
		switch {
		case len(s.Enum) > 0:
			return s.Enum[0]
		case s.Format != "":
			return value.String(format.Example(s.Format, g.now))
		case s.Pattern != "":
			return value.String("<matches: " + s.Pattern + ">")
		}
		return value.String("")
	case jsonschema.TypeNumber, jsonschema.TypeInteger:
		switch {
		case s.Minimum != nil:
			return value.Number(*s.Minimum)
		case s.Maximum != nil:
			return value.Number(math.Min(0, *s.Maximum))
		}
		return value.Int(0)
	case jsonschema.TypeBoolean:
		return value.Bool(false)
	}
	return value.Null()
}
