package jayson

import (
	"errors"
	"fmt"

	eng "github.com/reoring/jayson/internal/engine"

	"github.com/reoring/jayson/codegen"
	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/transform"
	"github.com/reoring/jayson/value"
)

// The functions below are the text boundary: they take document text, never
// panic or return errors, and report failures in-band (a parse_error issue
// or an "Error: "-prefixed string).

// ParseSchema decodes schema text and reads it into a Node.
func ParseSchema(schemaText []byte, popts ...ParseOpt) (*jsonschema.Node, jsonschema.Diag, error) {
	v, err := DecodeText(schemaText, firstOpt(popts))
	if err != nil {
		return nil, nil, fmt.Errorf("schema: %w", err)
	}
	n, d := jsonschema.FromValue(v)
	return n, d, nil
}

// ValidateJSON validates dataText against schemaText. Malformed text in
// either operand yields a single parse_error issue at "$". Schema warnings
// are attached to the result. popts[0] applies to both operands unless
// popts[1] is given for the data.
func ValidateJSON(schemaText, dataText []byte, vopt ValidateOpt, popts ...ParseOpt) ValidationResult {
	popt := firstOpt(popts)
	dopt := popt
	if len(popts) > 1 {
		dopt = popts[1]
	}
	schema, diag, err := ParseSchema(schemaText, popt)
	if err != nil {
		return parseFailure(err)
	}
	_, res := DecodeAndValidate(schema, dataText, vopt, dopt)
	res.Warnings = diag.Warnings()
	return res
}

// DecodeAndValidate decodes dataText and validates it against schema. A
// decoding failure yields a single parse_error issue at "$" and a null
// document.
func DecodeAndValidate(schema *jsonschema.Node, dataText []byte, vopt ValidateOpt, popts ...ParseOpt) (value.Value, ValidationResult) {
	data, err := DecodeText(dataText, firstOpt(popts))
	if err != nil {
		return value.Null(), parseFailure(fmt.Errorf("data: %w", err))
	}
	return data, Validate(data, schema, vopt)
}

func parseFailure(err error) ValidationResult {
	is := RootPath().Issue(CodeParseError, err.Error())
	var ie eng.IssueError
	if errors.As(err, &ie) {
		is.Params = map[string]any{"path": ie.Path, "code": ie.Code}
	}
	return newResult(Issues{is}, nil)
}

// InferSchemaJSON infers a schema document from dataText and renders it with
// 2-space indentation, or "Error: <msg>" for malformed input.
func InferSchemaJSON(dataText []byte, title string, allRequired bool, popts ...ParseOpt) string {
	data, err := DecodeText(dataText, firstOpt(popts))
	if err != nil {
		return errorText(err)
	}
	return value.Pretty(InferDocument(data, title, allRequired).ToValue())
}

// GenerateTemplateJSON renders an example document for schemaText, or
// "Error: <msg>".
func GenerateTemplateJSON(schemaText []byte, opt TemplateOpt, popts ...ParseOpt) string {
	schema, _, err := ParseSchema(schemaText, popts...)
	if err != nil {
		return errorText(err)
	}
	return value.Pretty(GenerateTemplate(schema, opt))
}

// EmitTypeJSON renders a TypeScript interface or JavaScript class for
// schemaText, or "// Error: <msg>".
func EmitTypeJSON(schemaText []byte, opts codegen.Options, popts ...ParseOpt) string {
	schema, _, err := ParseSchema(schemaText, popts...)
	if err != nil {
		return "// " + errorText(err)
	}
	return codegen.Emit(schema, opts)
}

// TransformJSON applies op to the records in dataText (a non-array document
// is one record) and renders the result, or "Error: <msg>".
func TransformJSON(dataText []byte, op transform.Operation, popts ...ParseOpt) string {
	data, err := DecodeText(dataText, firstOpt(popts))
	if err != nil {
		return errorText(err)
	}
	out, err := transform.ApplyValue(data, op)
	if err != nil {
		return errorText(err)
	}
	return value.Pretty(out)
}

// DescribeJSON summarizes schemaText.
func DescribeJSON(schemaText []byte, popts ...ParseOpt) (SchemaInfo, error) {
	schema, _, err := ParseSchema(schemaText, popts...)
	if err != nil {
		return SchemaInfo{}, err
	}
	return Describe(schema), nil
}

func errorText(err error) string { return "Error: " + err.Error() }
