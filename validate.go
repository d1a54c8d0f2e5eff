package jayson

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reoring/jayson/i18n"
	"github.com/reoring/jayson/internal/format"
	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/value"
)

// Validate checks data against schema and returns every violation in
// document order. A type mismatch on a node suppresses the remaining rules
// for that node. Keywords the schema model does not apply ($ref, oneOf, ...)
// accept any value.
func Validate(data value.Value, schema *jsonschema.Node, opts ...ValidateOpt) ValidationResult {
	v := &validator{opt: firstOpt(opts)}
	v.node(data, schema, RootPath())
	return newResult(v.errs, nil)
}

type validator struct {
	opt  ValidateOpt
	errs Issues
}

func (v *validator) done() bool { return v.opt.FailFast && len(v.errs) > 0 }

// fail records an issue. kv holds message parameters as key/value pairs;
// they feed both the localized message and ValidationError.Params.
func (v *validator) fail(p PathRef, code, msgKey string, got *value.Value, kv ...any) {
	if v.done() {
		return
	}
	data := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		data[kv[i].(string)] = paramText(kv[i+1])
	}
	is := p.Issue(code, v.message(msgKey, data), kv...)
	is.Value = got
	v.errs = append(v.errs, is)
}

func (v *validator) message(key string, data map[string]string) string {
	if v.opt.Translator != nil {
		return v.opt.Translator.Message(key, data)
	}
	return i18n.T(key, data)
}

func paramText(x any) string {
	switch t := x.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return value.FormatNumber(t)
	case error:
		return t.Error()
	}
	return ""
}

func ptr(x value.Value) *value.Value { return &x }

func (v *validator) node(data value.Value, s *jsonschema.Node, p PathRef) {
	if s == nil || v.done() {
		return
	}
	if len(s.Type) > 0 && !s.Type.Accepts(data) {
		v.fail(p, CodeInvalidType, CodeInvalidType, ptr(data),
			"expected", s.Type.String(), "got", string(jsonschema.TypeOf(data)))
		return
	}
	switch data.Kind() {
	case value.KindObject:
		v.object(data, s, p)
	case value.KindArray:
		v.array(data, s, p)
	case value.KindString:
		v.str(data, s, p)
	case value.KindNumber:
		v.number(data, s, p)
	}
}

func (v *validator) object(data value.Value, s *jsonschema.Node, p PathRef) {
	for _, name := range s.RequiredProperties() {
		if !data.Has(name) {
			v.fail(p.Field(name), CodeRequired, CodeRequired, nil, "field", name)
		}
	}
	for _, m := range data.Members() {
		if v.done() {
			return
		}
		if ps, ok := s.Property(m.Key); ok {
			v.node(m.Value, ps, p.Field(m.Key))
		}
	}
}

func (v *validator) array(data value.Value, s *jsonschema.Node, p PathRef) {
	n := data.Len()
	if s.MinItems != nil && n < *s.MinItems {
		v.fail(p, CodeTooFewItems, CodeTooFewItems, ptr(value.Int(int64(n))), "min", *s.MinItems)
	}
	if s.MaxItems != nil && n > *s.MaxItems {
		v.fail(p, CodeTooManyItems, CodeTooManyItems, ptr(value.Int(int64(n))), "max", *s.MaxItems)
	}
	if s.Items == nil {
		return
	}
	for i, it := range data.Items() {
		if v.done() {
			return
		}
		v.node(it, s.Items, p.Index(i))
	}
}

func (v *validator) str(data value.Value, s *jsonschema.Node, p PathRef) {
	n := utf8.RuneCountInString(data.Text())
	if s.MinLength != nil && n < *s.MinLength {
		v.fail(p, CodeTooShort, CodeTooShort, ptr(value.Int(int64(n))), "min", *s.MinLength)
	}
	if s.MaxLength != nil && n > *s.MaxLength {
		v.fail(p, CodeTooLong, CodeTooLong, ptr(value.Int(int64(n))), "max", *s.MaxLength)
	}
	re, err := s.PatternRegexp()
	if err != nil {
		v.fail(p, CodePattern, "invalid_pattern", ptr(data), "pattern", s.Pattern, "error", err)
	} else if re != nil && !re.MatchString(data.Text()) {
		v.fail(p, CodePattern, CodePattern, ptr(data), "pattern", s.Pattern)
	}
	v.enum(data, s, p)
	v.format(data, s, p)
}

func (v *validator) number(data value.Value, s *jsonschema.Node, p PathRef) {
	f := data.Float()
	if s.Minimum != nil && f < *s.Minimum {
		v.fail(p, CodeTooSmall, CodeTooSmall, ptr(data), "min", *s.Minimum)
	}
	if s.Maximum != nil && f > *s.Maximum {
		v.fail(p, CodeTooBig, CodeTooBig, ptr(data), "max", *s.Maximum)
	}
}

// enum constrains strings only; members of other kinds never match.
func (v *validator) enum(data value.Value, s *jsonschema.Node, p PathRef) {
	if s.Enum == nil {
		return
	}
	for _, e := range s.Enum {
		if value.Equal(e, data) {
			return
		}
	}
	names := make([]string, len(s.Enum))
	for i, e := range s.Enum {
		names[i] = e.ToString()
	}
	v.fail(p, CodeInvalidEnum, CodeInvalidEnum, ptr(data), "values", strings.Join(names, ", "))
}

func (v *validator) format(data value.Value, s *jsonschema.Node, p PathRef) {
	if !v.opt.AssertFormats || s.Format == "" {
		return
	}
	if !format.Check(s.Format, data.Text()) {
		v.fail(p, CodeInvalidFormat, CodeInvalidFormat, ptr(data), "format", s.Format)
	}
}
