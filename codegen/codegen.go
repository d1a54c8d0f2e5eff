// Package codegen emits TypeScript interfaces and JavaScript classes from a
// schema.
package codegen

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/reoring/jayson/internal/format"
	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/value"
)

// Target selects the emitted language.
type Target string

const (
	TypeScript Target = "typescript"
	JavaScript Target = "javascript"
)

// ParseTarget accepts "typescript"/"ts" and "javascript"/"js".
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "", "typescript", "ts":
		return TypeScript, nil
	case "javascript", "js":
		return JavaScript, nil
	}
	return "", fmt.Errorf("unknown target %q", s)
}

// Export selects named or default export of the emitted type.
type Export string

const (
	ExportNamed   Export = "named"
	ExportDefault Export = "default"
)

// ParseExport accepts "named" and "default".
func ParseExport(s string) (Export, error) {
	switch strings.ToLower(s) {
	case "", "named":
		return ExportNamed, nil
	case "default":
		return ExportDefault, nil
	}
	return "", fmt.Errorf("unknown export style %q", s)
}

// Options configures Emit. The zero value emits a named TypeScript interface.
type Options struct {
	Target Target
	Export Export
}

// Emit renders schema as source text. The type name is the PascalCase form of
// the schema title.
func Emit(schema *jsonschema.Node, opts Options) string {
	d := buildDecl(schema, opts)
	tmpl := interfaceTemplate
	if opts.Target == JavaScript {
		tmpl = classTemplate
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "// Error: " + err.Error() + "\n"
	}
	return buf.String()
}

type decl struct {
	Export      string
	Name        string
	Description string
	Props       []propDecl
	Required    []propDecl
}

type propDecl struct {
	Key         string // property key as written in an object literal or interface
	Access      string // member access suffix: ".name" or "['my-key']"
	Literal     string // name as a JS string literal
	Optional    bool
	Type        string
	Default     string
	Description string
}

func buildDecl(s *jsonschema.Node, opts Options) decl {
	d := decl{
		Export:      "export",
		Name:        format.PascalCase(s.Title),
		Description: docText(s.Description, "\n * "),
	}
	if opts.Export == ExportDefault {
		d.Export = "export default"
	}
	for _, p := range s.Properties {
		pd := propDecl{
			Key:         propertyKey(p.Name),
			Access:      memberAccess(p.Name),
			Literal:     jsString(p.Name),
			Optional:    !s.IsRequired(p.Name),
			Type:        tsType(p.Schema).expr,
			Default:     jsDefault(p.Schema),
			Description: docText(p.Schema.Description, " "),
		}
		d.Props = append(d.Props, pd)
	}
	// validate() checks required names in "required" order.
	for _, name := range s.RequiredProperties() {
		d.Required = append(d.Required, propDecl{Access: memberAccess(name), Literal: jsString(name)})
	}
	return d
}

var interfaceTemplate = template.Must(template.New("interface").Parse(`{{if .Description}}/**
 * {{.Description}}
 */
{{end}}{{.Export}} interface {{.Name}} {
{{range .Props}}{{if .Description}}  /** {{.Description}} */
{{end}}  {{.Key}}{{if .Optional}}?{{end}}: {{.Type}};
{{end}}}
`))

var classTemplate = template.Must(template.New("class").Parse(`{{if .Description}}/**
 * {{.Description}}
 */
{{end}}{{.Export}} class {{.Name}} {
{{if .Props}}  constructor(data = {}) {
{{range .Props}}    this{{.Access}} = data{{.Access}} ?? {{.Default}};
{{end}}  }

  static create(data) {
    return new {{.Name}}(data);
  }

  validate() {
    const errors = [];
{{range .Required}}    if (this{{.Access}} === undefined || this{{.Access}} === null) {
      errors.push({ field: {{.Literal}}, message: 'Required field is missing' });
    }
{{end}}    return { valid: errors.length === 0, errors };
  }

  toJSON() {
    return {
{{range .Props}}      {{.Key}}: this{{.Access}},
{{end}}    };
  }
{{end}}}
`))

// typeExpr is a TypeScript type expression; union marks a top-level "|" so
// array element types can be parenthesised.
type typeExpr struct {
	expr  string
	union bool
}

func tsType(s *jsonschema.Node) typeExpr {
	if s == nil || len(s.Type) == 0 {
		return typeExpr{expr: "unknown"}
	}
	if t, _ := s.Type.Single(); t == jsonschema.TypeString {
		if lits, ok := enumLiterals(s.Enum); ok {
			return typeExpr{expr: strings.Join(lits, " | "), union: len(lits) > 1}
		}
	}
	parts := make([]string, 0, len(s.Type))
	seen := map[string]bool{}
	for _, t := range s.Type {
		e := memberType(t, s).expr
		if !seen[e] {
			seen[e] = true
			parts = append(parts, e)
		}
	}
	if len(parts) == 1 {
		return memberType(s.Type[0], s)
	}
	return typeExpr{expr: strings.Join(parts, " | "), union: true}
}

func memberType(t jsonschema.Type, s *jsonschema.Node) typeExpr {
	switch t {
	case jsonschema.TypeString:
		return typeExpr{expr: "string"}
	case jsonschema.TypeNumber, jsonschema.TypeInteger:
		return typeExpr{expr: "number"}
	case jsonschema.TypeBoolean:
		return typeExpr{expr: "boolean"}
	case jsonschema.TypeNull:
		return typeExpr{expr: "null"}
	case jsonschema.TypeArray:
		if s.Items == nil {
			return typeExpr{expr: "unknown[]"}
		}
		el := tsType(s.Items)
		if el.union {
			return typeExpr{expr: "(" + el.expr + ")[]"}
		}
		return typeExpr{expr: el.expr + "[]"}
	case jsonschema.TypeObject:
		if s.Properties == nil {
			return typeExpr{expr: "Record<string, unknown>"}
		}
		if len(s.Properties) == 0 {
			return typeExpr{expr: "{}"}
		}
		fields := make([]string, len(s.Properties))
		for i, p := range s.Properties {
			opt := ""
			if !s.IsRequired(p.Name) {
				opt = "?"
			}
			fields[i] = propertyKey(p.Name) + opt + ": " + tsType(p.Schema).expr
		}
		return typeExpr{expr: "{ " + strings.Join(fields, "; ") + " }"}
	}
	return typeExpr{expr: "unknown"}
}

// enumLiterals renders scalar enum members as TypeScript literal types.
func enumLiterals(enum []value.Value) ([]string, bool) {
	if len(enum) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(enum))
	for _, e := range enum {
		switch e.Kind() {
		case value.KindString:
			out = append(out, jsString(e.Text()))
		case value.KindNumber, value.KindBool, value.KindNull:
			out = append(out, e.String())
		default:
			return nil, false
		}
	}
	return out, true
}

func jsDefault(s *jsonschema.Node) string {
	if s.Default != nil {
		return s.Default.String()
	}
	t, _ := s.Type.Single()
	switch t {
	case jsonschema.TypeString:
		return "''"
	case jsonschema.TypeNumber, jsonschema.TypeInteger:
		return "0"
	case jsonschema.TypeBoolean:
		return "false"
	case jsonschema.TypeArray:
		return "[]"
	case jsonschema.TypeObject:
		return "{}"
	}
	return "null"
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func propertyKey(name string) string {
	if identRe.MatchString(name) {
		return name
	}
	return jsString(name)
}

func memberAccess(name string) string {
	if identRe.MatchString(name) {
		return "." + name
	}
	return "[" + jsString(name) + "]"
}

var jsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

func jsString(s string) string { return "'" + jsEscaper.Replace(s) + "'" }

// docText makes s safe inside a /** */ block, joining lines with sep.
func docText(s, sep string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "*/", `*\/`)
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	return strings.Join(lines, sep)
}
